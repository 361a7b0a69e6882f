// Package boltkit exposes bolt buckets as forward sequences,
// so their entries can be zipped with in-memory containers or scanned with algokit.
//
// A view borrows the transaction of the bucket it was made from.
// It has to be used inside the DB.View or DB.Update callback which opened that transaction.
package boltkit

import (
	"bytes"
	"iter"

	"github.com/boltdb/bolt"

	"go.llib.dev/iterlab/pkg/iterkit"
)

// Entry is a key/value pair of a bucket.
// Both slices are copies, so they stay valid after the transaction is closed.
type Entry struct {
	Key   []byte
	Value []byte
}

func Bucket(b *bolt.Bucket) BucketView {
	return BucketView{b: b}
}

type BucketView struct {
	b *bolt.Bucket
}

var _ iterkit.Forward[Entry] = BucketView{}

// Cursor returns a cursor positioned at the first key of the bucket, in byte-sorted order.
func (v BucketView) Cursor() iterkit.Cursor[Entry] {
	c := &cursor{c: v.b.Cursor()}
	c.key, c.value = c.c.First()
	return c
}

func (v BucketView) All() iter.Seq[Entry] {
	return iterkit.Seq[Entry](v)
}

// Len counts the keys of the bucket by walking it,
// which also sees the writes of an ongoing DB.Update.
func (v BucketView) Len() int {
	return iterkit.Count(v.Cursor())
}

type cursor struct {
	c     *bolt.Cursor
	key   []byte
	value []byte
}

func (c *cursor) Value() Entry {
	return Entry{
		Key:   bytes.Clone(c.key),
		Value: bytes.Clone(c.value),
	}
}

func (c *cursor) Next() {
	if c.key == nil {
		return
	}
	c.key, c.value = c.c.Next()
}

func (c *cursor) Done() bool {
	return c.key == nil
}

// Keys projects the entries of the bucket to their keys.
func Keys(b *bolt.Bucket) iter.Seq[[]byte] {
	return func(yield func([]byte) bool) {
		for e := range Bucket(b).All() {
			if !yield(e.Key) {
				return
			}
		}
	}
}

// Values projects the entries of the bucket to their values.
func Values(b *bolt.Bucket) iter.Seq[[]byte] {
	return func(yield func([]byte) bool) {
		for e := range Bucket(b).All() {
			if !yield(e.Value) {
				return
			}
		}
	}
}
