package cli_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	osexec "os/exec"

	"github.com/bradleyjkemp/cupaloy"
	"go.uber.org/zap/zaptest"

	"github.com/rwx-research/codex-wrapper/internal/cli"
	"github.com/rwx-research/codex-wrapper/internal/codex"
	"github.com/rwx-research/codex-wrapper/internal/errors"
	"github.com/rwx-research/codex-wrapper/internal/exec"
	"github.com/rwx-research/codex-wrapper/internal/mocks"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Run", func() {
	var (
		ctx            context.Context
		err            error
		mockCommand    *mocks.Command
		received       exec.CommandConfig
		runConfig      cli.RunConfig
		service        cli.Service
		stdout, stderr *bytes.Buffer

		commandStarted, commandFinished bool
	)

	BeforeEach(func() {
		ctx = context.Background()
		err = nil
		commandStarted = false
		commandFinished = false
		received = exec.CommandConfig{}
		stdout = new(bytes.Buffer)
		stderr = new(bytes.Buffer)

		service = cli.Service{
			Log:        zaptest.NewLogger(GinkgoT()).Sugar(),
			TaskRunner: new(mocks.TaskRunner),
			Stdout:     stdout,
			Stderr:     stderr,
		}

		mockCommand = new(mocks.Command)
		mockCommand.MockStart = func() error {
			commandStarted = true
			_, err := io.WriteString(received.Stdout, "codex says hi\n")
			Expect(err).ToNot(HaveOccurred())
			_, err = io.WriteString(received.Stderr, "codex warns\n")
			Expect(err).ToNot(HaveOccurred())
			return nil
		}
		mockCommand.MockWait = func() error {
			commandFinished = true
			return nil
		}

		service.TaskRunner.(*mocks.TaskRunner).MockNewCommand = func(
			ctx context.Context,
			cfg exec.CommandConfig,
		) (exec.Command, error) {
			received = cfg
			return mockCommand, nil
		}

		runConfig = cli.RunConfig{
			Codex:  codex.NewConfig(codex.WithExtraArgs("--model", "o3")),
			Prompt: "fix the tests",
			Args:   []string{"--quiet"},
		}
	})

	JustBeforeEach(func() {
		err = service.Run(ctx, runConfig)
	})

	Context("under expected conditions", func() {
		It("doesn't return an error", func() {
			Expect(err).ToNot(HaveOccurred())
		})

		It("runs the assembled command line", func() {
			Expect(commandStarted).To(BeTrue())
			Expect(commandFinished).To(BeTrue())
			Expect(received.Name).To(Equal("codex"))
			Expect(received.Args).To(Equal([]string{
				"--approval-mode", "full-auto", "--model", "o3", "--quiet", "fix the tests",
			}))
		})

		It("relays stdout and stderr verbatim", func() {
			Expect(stdout.String()).To(Equal("codex says hi\n"))
			Expect(stderr.String()).To(Equal("codex warns\n"))
		})
	})

	Context("when codex exits with a non-zero exit code", func() {
		BeforeEach(func() {
			mockCommand.MockWait = func() error {
				return errors.New("exit status 3")
			}
			service.TaskRunner.(*mocks.TaskRunner).MockGetExitStatusFromError = func(error) (int, error) {
				return 3, nil
			}
		})

		It("passes the exit code along as an execution error", func() {
			executionErr, ok := errors.AsExecutionError(err)
			Expect(ok).To(BeTrue())
			Expect(executionErr.Code).To(Equal(3))
		})

		It("still relays the output", func() {
			Expect(stdout.String()).To(Equal("codex says hi\n"))
			Expect(stderr.String()).To(Equal("codex warns\n"))
		})
	})

	Context("when codex can't be launched", func() {
		BeforeEach(func() {
			mockCommand.MockStart = func() error {
				return osexec.ErrNotFound
			}
		})

		It("returns a launch error", func() {
			_, ok := errors.AsLaunchError(err)
			Expect(ok).To(BeTrue())
		})

		It("doesn't print anything", func() {
			Expect(stdout.String()).To(BeEmpty())
			Expect(stderr.String()).To(BeEmpty())
		})
	})

	Context("with JSON output", func() {
		BeforeEach(func() {
			runConfig.JSON = true
		})

		It("prints the result as a JSON document", func() {
			var result codex.Result
			Expect(json.Unmarshal(stdout.Bytes(), &result)).To(Succeed())

			Expect(result.ExitCode).To(Equal(0))
			Expect(result.Stdout).To(Equal("codex says hi\n"))
			Expect(result.Stderr).To(Equal("codex warns\n"))
			Expect(result.Args[0]).To(Equal("codex"))
			Expect(stderr.String()).To(BeEmpty())
		})

		It("renders a stable document", func() {
			cupaloy.SnapshotT(GinkgoT(), stdout.String())
		})
	})

	Context("with a dry-run", func() {
		BeforeEach(func() {
			runConfig.DryRun = true
		})

		It("prints the shell-quoted command line without running it", func() {
			Expect(err).ToNot(HaveOccurred())
			Expect(commandStarted).To(BeFalse())
			Expect(stdout.String()).To(Equal("codex --approval-mode full-auto --model o3 --quiet 'fix the tests'\n"))
		})

		Context("and JSON output", func() {
			BeforeEach(func() {
				runConfig.JSON = true
			})

			It("prints the command line as a JSON document", func() {
				var output struct {
					Args []string `json:"args"`
				}
				Expect(json.Unmarshal(stdout.Bytes(), &output)).To(Succeed())
				Expect(output.Args).To(HaveLen(7))
				Expect(output.Args[6]).To(Equal("fix the tests"))
			})
		})
	})

	Context("without an executable", func() {
		BeforeEach(func() {
			runConfig.Codex.Executable = ""
		})

		It("returns a configuration error", func() {
			_, ok := errors.AsConfigurationError(err)
			Expect(ok).To(BeTrue())
			Expect(commandStarted).To(BeFalse())
		})
	})
})
