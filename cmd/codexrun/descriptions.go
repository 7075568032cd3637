package main

const descriptionCodexrun = `codexrun invokes codex with a prompt and relays its output and exit code.

The command line is assembled as

  codex [--approval-mode MODE] [--full-auto-error-mode MODE] [EXTRA-ARGS...] [ARGS...] PROMPT

where EXTRA-ARGS come from the configuration and ARGS are everything following
PROMPT on the codexrun command line. Flags of codexrun must precede PROMPT.

Configuration is read from flags, CODEXRUN_* environment variables and a
.codexrun.yaml file in the current directory or any of its parents, in that
order of precedence.`
