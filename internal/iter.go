package internal

import (
	"iter"
)

// Chunks iterates a buffer in fixed size chunks, with the index of each
// chunk. A trailing partial chunk is yielded as-is.
func Chunks(data []byte, size int) iter.Seq2[int, []byte] {
	return func(yield func(int, []byte) bool) {
		for index := 0; len(data) > 0; index++ {
			n := min(size, len(data))
			if !yield(index, data[:n:n]) {
				return // Stop if the consumer stops
			}
			data = data[n:]
		}
	}
}

// IterSeqConcat concatenates multiple iterators into a single iterator sequence.
func IterSeqConcat[T any](seqs ...iter.Seq[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, seq := range seqs {
			for val := range seq {
				if !yield(val) {
					return // Stop if the consumer stops
				}
			}
		}
	}
}
