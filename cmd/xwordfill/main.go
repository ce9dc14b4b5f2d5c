// Command xwordfill fills a crossword grid with words from a dictionary
// file, using Knuth's dancing-links algorithm over an exact-cover encoding
// of the grid. Grounded on xword-fill.c's main() and its hand-rolled
// argument loop, in the style of this module's teacher's cmd/rchive.go.
package main

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/fatih/color"

	"xwordfill/internal/xdict"
	"xwordfill/internal/xword"
)

var solvedLetter = color.New(color.FgGreen)

func main() {
	args := os.Args[1:]

	dictFilename := "xdict.save.txt"
	outputFilename := ""
	numSolutions := -1
	everyNth := 1
	rejectDuplicateWords := true
	naive := false
	debug := false

	for len(args) > 0 {
		if len(args[0]) == 0 || args[0][0] != '-' {
			break
		}
		if args[0] == "-" {
			break
		}

		switch args[0] {
		case "-h", "-help", "--help", "-?":
			doHelp()
			return
		case "-o":
			outputFilename = getStringArg(args, "output filename")
			args = args[1:]
		case "-d":
			dictFilename = getStringArg(args, "dictionary filename")
			args = args[1:]
		case "-n", "-N":
			numSolutions = getPositiveIntArg(args, "number of solutions")
			args = args[1:]
		case "--every":
			everyNth = getPositiveIntArg(args, "every-Nth solution count")
			args = args[1:]
		case "--allow_duplicate_words":
			rejectDuplicateWords = false
		case "--naive":
			naive = true
		case "--debug":
			debug = true
		default:
			doError("Unrecognized option %q; -h for help", args[0])
		}
		args = args[1:]
	}

	if len(args) > 1 {
		doError("You seem to have provided %d input files.\nI can only read one at a time.", len(args))
	}

	if debug {
		xdict.PrintStats()
	}

	var gridFile *os.File
	if len(args) == 1 && args[0] != "-" {
		f, err := os.Open(args[0])
		if err != nil {
			doError("I couldn't open grid file %q!", args[0])
		}
		gridFile = f
		defer f.Close()
	} else {
		gridFile = os.Stdin
	}

	grid, err := xword.ParseGrid(gridFile)
	if err != nil {
		doError("I couldn't parse the grid: %v", err)
	}

	fmt.Printf("Grid (%dx%d):\n%s", grid.W, grid.H, grid.String())

	if rejectDuplicateWords && xword.ContainsDuplicates(grid) {
		doError("The input grid contains duplicate words!\n" +
			"Use option --allow_duplicate_words, or amend your input file.")
	}
	logDebug(debug, "Done checking for duplicate words in input grid.")

	dict, err := xdict.Load(dictFilename)
	if err != nil {
		doError("Error loading dictionary file %q: %v", dictFilename, err)
	}
	logDebug(debug, "Done loading dictionary file %q.", dictFilename)

	out := os.Stdout
	if outputFilename != "" && outputFilename != "-" {
		f, err := os.Create(outputFilename)
		if err != nil {
			doError("I couldn't open file %q for output!", outputFilename)
		}
		out = f
		defer f.Close()
	}

	removed := xword.StripDict(grid, dict, rejectDuplicateWords)
	logDebug(debug, "Stripped %d dictionary words that cannot fit this grid.", removed)

	opts := xword.DefaultOptions()
	opts.Naive = naive
	opts.RejectDuplicateWords = rejectDuplicateWords
	opts.MaxSolutions = numSolutions
	opts.EveryNth = everyNth

	fmt.Println("Solving...")
	n, err := xword.Solve(grid, dict, opts, func(result *xword.Grid) bool {
		printSolution(grid, result, out)
		fmt.Fprintln(out)
		return true
	})
	if err != nil {
		doError("There was an error while solving: %v", err)
	}

	switch n {
	case 1:
		fmt.Println("There was 1 solution found.")
	default:
		fmt.Printf("There were %d solutions found.\n", n)
	}
}

// printSolution writes result to out, printing in green every cell that
// started out open (black squares and committed letters print plain), so
// a reader can see at a glance which letters the solver actually chose.
// Coloring is skipped when out isn't the terminal, since ANSI escapes in
// a saved file just corrupt it.
func printSolution(original, result *xword.Grid, out io.Writer) {
	colorize := out == io.Writer(os.Stdout)
	for j := 0; j < result.H; j++ {
		for i := 0; i < result.W; i++ {
			ch := result.At(j, i)
			if colorize && !xword.IsFixedValue(original.At(j, i)) {
				solvedLetter.Fprint(out, string(ch))
			} else {
				fmt.Fprint(out, string(ch))
			}
		}
		fmt.Fprintln(out)
	}
}

func getStringArg(args []string, what string) string {
	if len(args) < 2 {
		doError("Need %s with %s", what, args[0])
	}
	return args[1]
}

func getPositiveIntArg(args []string, what string) int {
	if len(args) < 2 {
		doError("Need a number (%s) with %s", what, args[0])
	}
	n, err := strconv.Atoi(args[1])
	if err != nil || n <= 0 {
		doError("Option %s expects a positive integer!", args[0])
	}
	return n
}

func logDebug(enabled bool, format string, a ...any) {
	if !enabled {
		return
	}
	fmt.Fprintf(os.Stderr, format+"\n", a...)
}

func doError(format string, a ...any) {
	fmt.Fprint(os.Stderr, color.New(color.FgRed).Sprint("error: "))
	fmt.Fprintf(os.Stderr, format+"\n", a...)
	os.Exit(1)
}

func doHelp() {
	fmt.Println(`xwordfill [options] [grid-file]

Fills a crossword grid with words from a dictionary file using the
dancing-links exact-cover algorithm.

Options:
  -d FILE                   dictionary file (default xdict.save.txt)
  -o FILE                   output file (default stdout)
  -n N                      stop after N solutions
  --every N                 print only every Nth solution
  --allow_duplicate_words   don't reject grids that reuse a word
  --naive                   use the uncompressed (54*w*h column) encoding
  --debug                   print progress to stderr`)
}
