package cli

const usage = `cformat - a clang-format-style source formatter for C-family languages

cformat formats C, C++, and Objective-C source files by annotating each
token's syntactic role and searching for the lowest-penalty line layout
under a configurable column limit, the same two-stage approach
clang-format uses. It ships the LLVM and Google style presets and layers
project, user, and system configuration files on top of them.

Usage:
  cformat <command> [options] [paths...]

Commands:
  format    Format C-family source files
  check     Check whether files are already formatted
  style     Print the resolved style configuration as JSON
  init      Initialize a new cformat style file
  version   Print version information
  help      Show this help message

Global options (format, check, style):
  --debug                 enable debug logging
  --config PATH           path to a .cformat.json style file
  --color MODE            (format, check) colorize output: auto, always, never

Format/check options:
  --style NAME            base style preset: llvm or google
  --style-config PATH     path to a .cformat.json style file
  --report FORMAT         report format: text, json, diff, summary
  --jobs N                number of parallel workers (0 = auto)
  --in-place, -i          (format only) write formatted output back to each file
  --diff                  (format only) print a unified diff instead of writing
  --dry-run               compute a diff without writing files
  --no-backups            disable backup creation when writing in place
  --column-limit N        override the style's column limit
  --compact               use compact report output

Examples:
  cformat format                    Report files that would change
  cformat format -i src/            Rewrite files in src/ in place
  cformat format --diff main.c      Print a unified diff
  cformat check src/                Fail if any file in src/ is unformatted
  cformat init --style google       Create .cformat.json from the Google preset
  cformat style                     Print the resolved style for this directory
`
