// SPDX-License-Identifier: EPL-2.0

package issue

import (
	"github.com/charmbracelet/glamour"
	"golang.org/x/exp/slices"
)

type Id int

const (
	SourceNotFoundId Id = iota + 1
	PermissionDeniedId
	InvalidArgumentsId
	InvalidEncodingId
	ReadFailedId
	WriteFailedId
	ConfigLoadFailedId
	ScriptExecutionFailedId
	CommandNotFoundId
)

type MarkdownMsg string

type HttpLink string

type Issue struct {
	id       Id          // ID used to lookup the issue
	mdMsg    MarkdownMsg // Markdown text that will be rendered
	docLinks []HttpLink  // manual pages describing the affected command
	extLinks []HttpLink  // external links that might be useful for the user
}

func (i *Issue) Id() Id {
	return i.id
}

func (i *Issue) MarkdownMsg() MarkdownMsg {
	return i.mdMsg
}

func (i *Issue) DocLinks() []HttpLink {
	return slices.Clone(i.docLinks)
}

func (i *Issue) ExtLinks() []HttpLink {
	return slices.Clone(i.extLinks)
}

// Render renders the page with the named glamour standard style
// ("auto", "dark", "light", "notty").
func (i *Issue) Render(stylePath string) (string, error) {
	md := string(i.mdMsg)
	links := append(i.DocLinks(), i.ExtLinks()...)
	if len(links) > 0 {
		md += "\n\n## See also\n"
		for _, link := range links {
			md += "- <" + string(link) + ">\n"
		}
	}
	return render(md, stylePath)
}

var (
	render = glamour.Render

	sourceNotFoundIssue = &Issue{
		id: SourceNotFoundId,
		mdMsg: `
# Input file not found

One of the files named on the command line does not exist.
The remaining files were still processed.

## Things you can try
- Check the spelling and the current directory:
~~~
$ ls -l FILE
~~~
- Use ` + "`-`" + ` to read standard input instead of a file.`,
		docLinks: []HttpLink{"https://man7.org/linux/man-pages/man1/wc.1.html"},
	}

	permissionDeniedIssue = &Issue{
		id: PermissionDeniedId,
		mdMsg: `
# Permission denied

textutils could not open a file for reading (or an output file for writing).

## Things you can try
- Check the file mode and owner:
~~~
$ ls -l FILE
~~~
- Pipe the content through standard input:
~~~
$ sudo cat FILE | textutils wc
~~~`,
	}

	invalidArgumentsIssue = &Issue{
		id: InvalidArgumentsId,
		mdMsg: `
# Invalid arguments

The command line was rejected before any input was read.

## Common causes
- ` + "`head -n`" + ` and ` + "`head -c`" + ` take positive numbers and cannot be combined.
- ` + "`wc -c`" + ` (bytes) and ` + "`wc -m`" + ` (characters) cannot be combined.
- ` + "`echo`" + ` needs at least one word.
- ` + "`uniq`" + ` takes at most two operands: INPUT and OUTPUT.

## Things you can try
~~~
$ textutils help COMMAND
~~~`,
	}

	invalidEncodingIssue = &Issue{
		id: InvalidEncodingId,
		mdMsg: `
# Input is not valid UTF-8

Character counting needs UTF-8 input. The counter stopped at the first
malformed byte sequence and reported its byte offset.

## Things you can try
- Count bytes only, which works on any input:
~~~
$ textutils wc -c FILE
~~~
- Count malformed sequences as U+FFFD instead of failing:
~~~
$ TEXTUTILS_WC_INVALID_UTF8=replace textutils wc FILE
~~~
- Convert the file first:
~~~
$ iconv -f LATIN1 -t UTF-8 FILE | textutils wc
~~~`,
		extLinks: []HttpLink{"https://en.wikipedia.org/wiki/UTF-8#Invalid_sequences_and_error_handling"},
	}

	readFailedIssue = &Issue{
		id: ReadFailedId,
		mdMsg: `
# Read failed

An input was opened but reading it failed part way through.
Counts for that input were not added to the total.

## Things you can try
- Check that the input is a regular file and not a directory.
- Retry if the file lives on a network or removable filesystem.`,
	}

	writeFailedIssue = &Issue{
		id: WriteFailedId,
		mdMsg: `
# Write failed

Output could not be written. This usually means the downstream reader
closed the pipe or the disk is full.

## Things you can try
- Check free space with ` + "`df -h`" + `.
- Check that the output file's directory exists and is writable.`,
	}

	configLoadFailedIssue = &Issue{
		id: ConfigLoadFailedId,
		mdMsg: `
# Failed to load configuration

The configuration file could not be parsed or did not match the schema.

## Things you can try
- Show where textutils looks for its configuration:
~~~
$ textutils config path
~~~
- Print a configuration file with every default filled in:
~~~
$ textutils config dump
~~~
- Check ` + "`TEXTUTILS_*`" + ` environment variables for out-of-range values.`,
		extLinks: []HttpLink{"https://cuelang.org/docs/"},
	}

	scriptExecutionFailedIssue = &Issue{
		id: ScriptExecutionFailedId,
		mdMsg: `
# Script execution failed

The script passed to ` + "`textutils sh`" + ` could not be parsed or a command in
it failed.

## Things you can try
- Check the script syntax:
~~~
$ textutils sh -c 'echo hello | wc -w'
~~~
- Run it with ` + "`--verbose`" + ` to see each builtin dispatch in the log.`,
		extLinks: []HttpLink{"https://pkg.go.dev/mvdan.cc/sh/v3/interp"},
	}

	commandNotFoundIssue = &Issue{
		id: CommandNotFoundId,
		mdMsg: `
# Command not found

The shell script invoked a command that is neither a textutils builtin nor
allowed to run from the host because ` + "`sh.builtins_only`" + ` is set.

## Things you can try
- List the builtins:
~~~
$ textutils --help
~~~
- Allow host commands:
~~~
$ TEXTUTILS_SH_BUILTINS_ONLY=false textutils sh script.sh
~~~`,
	}

	issues = map[Id]*Issue{
		sourceNotFoundIssue.Id():        sourceNotFoundIssue,
		permissionDeniedIssue.Id():      permissionDeniedIssue,
		invalidArgumentsIssue.Id():      invalidArgumentsIssue,
		invalidEncodingIssue.Id():       invalidEncodingIssue,
		readFailedIssue.Id():            readFailedIssue,
		writeFailedIssue.Id():           writeFailedIssue,
		configLoadFailedIssue.Id():      configLoadFailedIssue,
		scriptExecutionFailedIssue.Id(): scriptExecutionFailedIssue,
		commandNotFoundIssue.Id():       commandNotFoundIssue,
	}
)

func Get(id Id) *Issue {
	return issues[id]
}
