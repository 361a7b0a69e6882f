package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/boltdb/bolt"

	"go.llib.dev/frameless/pkg/cli"
	"go.llib.dev/frameless/pkg/errorkit"
	"go.llib.dev/frameless/pkg/logging"

	"go.llib.dev/iterlab/adapter/boltkit"
	"go.llib.dev/iterlab/pkg/algokit"
	"go.llib.dev/iterlab/pkg/datastruct"
	"go.llib.dev/iterlab/pkg/iterkit"
)

const ErrBucketNotFound errorkit.Error = "ErrBucketNotFound"

type ZipCommand struct {
	Left    string `flag:"left,l" desc:"first list, its items come first in each line"`
	Right   string `flag:"right,r" desc:"second list"`
	Sep     string `flag:"sep" desc:"separator between the two items of a line (default: space)"`
	Unique  bool   `flag:"unique,u" desc:"sort both lists and drop the repeated items before zipping"`
	Reverse bool   `flag:"reverse" desc:"pair the left list with the right list read from its end"`

	ListSeparator string
	Logger        *logging.Logger
}

func (cmd ZipCommand) Summary() string { return "pair up two lists item by item" }

func (cmd ZipCommand) ServeCLI(w cli.Response, r *cli.Request) {
	var (
		left  = splitList(cmd.Left, cmd.ListSeparator)
		right = splitList(cmd.Right, cmd.ListSeparator)
		sep   = cmd.Sep
	)
	if sep == "" {
		sep = " "
	}
	cmd.Logger.Debug(r.Context(), "zipping lists",
		logging.Field("left", len(left)),
		logging.Field("right", len(right)),
		logging.Field("unique", cmd.Unique),
		logging.Field("reverse", cmd.Reverse))

	var ls, rs iterkit.Forward[string] = iterkit.Slice(left), iterkit.Slice(right)
	if cmd.Unique {
		var lset, rset datastruct.SortedSet[string]
		lset.Add(left...)
		rset.Add(right...)
		ls, rs = &lset, &rset
	}
	if cmd.Reverse {
		var rev datastruct.LinkedList[string]
		for v := range iterkit.Seq(rs) {
			rev.Prepend(v)
		}
		rs = &rev
	}

	for a, b := range iterkit.Zip(ls, rs).All() {
		fmt.Fprintf(w, "%s%s%s\n", a, sep, b)
	}
}

type RangeCommand struct {
	Start float64 `arg:"0" desc:"the first value"`
	End   float64 `arg:"1" desc:"the range stops before reaching it"`
	Step  float64 `arg:"2" default:"1" desc:"the distance between values, use -- before a negative step"`

	Logger *logging.Logger
}

func (cmd RangeCommand) Summary() string { return "print an arithmetic progression" }

func (cmd RangeCommand) ServeCLI(w cli.Response, r *cli.Request) {
	rng, err := iterkit.RangeStep(cmd.Start, cmd.End, cmd.Step)
	if err != nil {
		cmd.Logger.Debug(r.Context(), "invalid range", logging.ErrField(err))
		w.ExitCode(cli.ExitCodeBadRequest)
		fmt.Fprintln(stderr(w), err.Error())
		return
	}
	for v := range rng.All() {
		fmt.Fprintln(w, strconv.FormatFloat(v, 'g', -1, 64))
	}
}

type PalindromeCommand struct {
	List string `arg:"0" desc:"the list to check"`

	ListSeparator string
}

func (cmd PalindromeCommand) Summary() string {
	return "tell if a list reads the same in both directions"
}

func (cmd PalindromeCommand) ServeCLI(w cli.Response, r *cli.Request) {
	var ll datastruct.LinkedList[string]
	ll.Append(splitList(cmd.List, cmd.ListSeparator)...)
	fmt.Fprintln(w, algokit.IsPalindrome[string](&ll))
}

type BucketCommand struct {
	Path   string `arg:"0" desc:"path of the bolt database file"`
	Bucket string `arg:"1" desc:"name of the bucket to list"`
	Limit  int    `flag:"limit,n" default:"0" desc:"print at most this many entries, 0 means all of them"`

	Logger *logging.Logger
}

func (cmd BucketCommand) Summary() string {
	return "list the entries of a bolt bucket with their position"
}

func (cmd BucketCommand) ServeCLI(w cli.Response, r *cli.Request) {
	db, err := bolt.Open(cmd.Path, 0600, &bolt.Options{ReadOnly: true})
	if err != nil {
		cmd.Logger.Error(r.Context(), "failed to open bolt database", logging.ErrField(err), logging.Field("path", cmd.Path))
		cli.HandleError(w, r, err)
		return
	}
	defer db.Close()

	err = db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(cmd.Bucket))
		if b == nil {
			return ErrBucketNotFound.F("bucket: %s", cmd.Bucket)
		}
		view := boltkit.Bucket(b)
		positions := iterkit.RangeTo(view.Len())
		if 0 < cmd.Limit {
			positions = iterkit.RangeTo(cmd.Limit)
		}
		for i, e := range iterkit.Zip[int, boltkit.Entry](positions, view).All() {
			fmt.Fprintf(w, "%d\t%s\t%s\n", i, e.Key, e.Value)
		}
		return nil
	})
	if err != nil {
		cli.HandleError(w, r, err)
	}
}

func splitList(raw, sep string) []string {
	if raw == "" {
		return nil
	}
	return strings.Split(raw, sep)
}

func stderr(w cli.Response) io.Writer {
	if ew, ok := w.(cli.ErrorWriter); ok {
		return ew.Stderr()
	}
	return w
}
