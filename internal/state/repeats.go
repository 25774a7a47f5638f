package state

// This file contains the functions that check if a match position is repeated.

import (
	"encoding/binary"
	"hash/fnv"

	"k8s.io/klog/v2"
)

// HashNode represents a list of hashes of the previous positions in a line of the game, used to
// check for repeated positions. The most recent position comes first.
type HashNode struct {
	Hash uint64
	Prev *HashNode
}

// Push returns a new list with hash added in front of hn. hn itself is not changed, so lists can share
// their tails.
func (hn *HashNode) Push(hash uint64) *HashNode {
	return &HashNode{Hash: hash, Prev: hn}
}

// CountRepeats returns the number of times hash appears in the list.
func (hn *HashNode) CountRepeats(hash uint64) int {
	var repeats int
	for ; hn != nil; hn = hn.Prev {
		if hn.Hash == hash {
			repeats++
		}
	}
	return repeats
}

// Hash of the position: the placement of the pieces and the player to move next.
func (b *Board) Hash(nextPlayer Color) uint64 {
	hasher := fnv.New64a()
	if err := binary.Write(hasher, binary.LittleEndian, nextPlayer); err != nil {
		klog.Fatalf("Failed to write to hasher: %v", err)
	}
	if err := binary.Write(hasher, binary.LittleEndian, b.squares); err != nil {
		klog.Fatalf("Failed to write to hasher: %v", err)
	}
	return hasher.Sum64()
}
