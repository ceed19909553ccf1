// Package merkle builds binary Merkle trees over sponge.Digest leafs, using
// Anemoi's merge primitive (spec section 4.7) as the two-to-one hash. The
// tree itself is unchanged from a conventional indexed binary Merkle tree;
// only the choice of hash-pair function is Anemoi-specific.
package merkle

import (
	"fmt"
	"math/bits"

	"github.com/dannywillems/anemoi/pkg/anemoi/sponge"
)

// NodeIndex indexes internal nodes of a Tree.
// Convention:
//   - Nothing lives at index 0
//   - Index 1 points to the root
//   - Indices 2 and 3 contain the two children of the root
//   - Indices 4 and 5 contain the two children of node 2
//   - And so on...
type NodeIndex = uint64

// LeafIndex indexes the leafs of a Tree, left to right, starting at zero.
type LeafIndex = uint64

// Height counts the number of layers in the tree, not including the root.
type Height = uint32

// RootIndex is the index of the root node.
const RootIndex NodeIndex = 1

// MergeFunc hashes two digests into one. It is the tree's only dependency
// on a concrete hash: callers pass in an Anemoi instance's sponge.Merge
// bound to its permutation.Params.
type MergeFunc func(left, right sponge.Digest) sponge.Digest

// Tree is a binary tree of digests supporting inclusion proofs, generic
// over whichever MergeFunc (and therefore whichever Anemoi instance) built
// it.
type Tree struct {
	merge MergeFunc
	nodes []sponge.Digest
}

// New builds a Tree over leafs using merge to combine sibling pairs.
// Returns an error if leafs is empty or its length is not a power of two.
func New(merge MergeFunc, leafs []sponge.Digest) (*Tree, error) {
	nodes, err := initializeNodes(leafs)
	if err != nil {
		return nil, err
	}

	t := &Tree{merge: merge, nodes: nodes}
	t.fillSequentially(len(leafs))
	return t, nil
}

func initializeNodes(leafs []sponge.Digest) ([]sponge.Digest, error) {
	numLeafs := len(leafs)
	if numLeafs == 0 {
		return nil, fmt.Errorf("merkle: cannot build a tree with zero leafs")
	}
	if !isPowerOfTwo(uint32(numLeafs)) {
		return nil, fmt.Errorf("merkle: number of leafs must be a power of two, got %d", numLeafs)
	}

	nodes := make([]sponge.Digest, 2*numLeafs)
	copy(nodes[numLeafs:], leafs)
	return nodes, nil
}

func (t *Tree) fillSequentially(numRemainingNodes int) {
	for numRemainingNodes > 1 {
		for i := 0; i < numRemainingNodes; i += 2 {
			left := t.nodes[numRemainingNodes+i]
			right := t.nodes[numRemainingNodes+i+1]
			t.nodes[numRemainingNodes/2+i/2] = t.merge(left, right)
		}
		numRemainingNodes /= 2
	}
}

// Root returns the tree's root digest.
func (t *Tree) Root() sponge.Digest {
	if len(t.nodes) == 0 {
		return nil
	}
	return t.nodes[RootIndex]
}

// Height returns the tree's height (number of layers above the leafs).
func (t *Tree) Height() Height {
	if len(t.nodes) <= 1 {
		return 0
	}
	numLeafs := len(t.nodes) / 2
	return uint32(bits.Len(uint(numLeafs)) - 1)
}

// NumLeafs returns the number of leafs in the tree.
func (t *Tree) NumLeafs() uint64 {
	if len(t.nodes) <= 1 {
		return 0
	}
	return uint64(len(t.nodes) / 2)
}

// GetLeaf returns the leaf at the given index.
func (t *Tree) GetLeaf(index LeafIndex) (sponge.Digest, error) {
	numLeafs := t.NumLeafs()
	if index >= numLeafs {
		return nil, fmt.Errorf("merkle: leaf index %d out of range [0, %d)", index, numLeafs)
	}
	return t.nodes[numLeafs+index], nil
}

// GetNode returns the node at the given node index.
func (t *Tree) GetNode(nodeIndex NodeIndex) (sponge.Digest, error) {
	if nodeIndex == 0 || nodeIndex >= uint64(len(t.nodes)) {
		return nil, fmt.Errorf("merkle: node index %d out of range [1, %d)", nodeIndex, len(t.nodes))
	}
	return t.nodes[nodeIndex], nil
}

// AuthenticationPath returns the sibling digests needed to recompute the
// root from the leaf at leafIndex.
func (t *Tree) AuthenticationPath(leafIndex LeafIndex) ([]sponge.Digest, error) {
	numLeafs := t.NumLeafs()
	if leafIndex >= numLeafs {
		return nil, fmt.Errorf("merkle: leaf index %d out of range [0, %d)", leafIndex, numLeafs)
	}

	height := t.Height()
	path := make([]sponge.Digest, height)

	nodeIndex := numLeafs + leafIndex
	for i := uint32(0); i < height; i++ {
		siblingIndex := nodeIndex ^ 1
		path[i] = t.nodes[siblingIndex]
		nodeIndex /= 2
	}
	return path, nil
}

// VerifyInclusionProof recomputes the root from leaf, leafIndex, and
// authPath using merge, and reports whether it matches root.
func VerifyInclusionProof(merge MergeFunc, root sponge.Digest, leafIndex LeafIndex, leaf sponge.Digest, authPath []sponge.Digest) bool {
	current := leaf
	idx := leafIndex
	for _, sibling := range authPath {
		if idx%2 == 0 {
			current = merge(current, sibling)
		} else {
			current = merge(sibling, current)
		}
		idx /= 2
	}
	return current.Equal(root)
}

// LeafIndexDigestPair pairs a leaf index with its digest.
type LeafIndexDigestPair struct {
	Index  LeafIndex
	Digest sponge.Digest
}

// InclusionProof is a batched inclusion proof for multiple leafs.
type InclusionProof struct {
	TreeHeight              Height
	IndexedLeafs            []LeafIndexDigestPair
	AuthenticationStructure []sponge.Digest

	merge MergeFunc
}

// NewInclusionProof builds a de-duplicated inclusion proof for leafIndices.
func (t *Tree) NewInclusionProof(leafIndices []LeafIndex) (*InclusionProof, error) {
	numLeafs := t.NumLeafs()
	for _, idx := range leafIndices {
		if idx >= numLeafs {
			return nil, fmt.Errorf("merkle: leaf index %d out of range [0, %d)", idx, numLeafs)
		}
	}

	indexedLeafs := make([]LeafIndexDigestPair, len(leafIndices))
	for i, idx := range leafIndices {
		leaf, _ := t.GetLeaf(idx)
		indexedLeafs[i] = LeafIndexDigestPair{Index: idx, Digest: leaf}
	}

	return &InclusionProof{
		TreeHeight:              t.Height(),
		IndexedLeafs:            indexedLeafs,
		AuthenticationStructure: t.buildAuthenticationStructure(leafIndices),
		merge:                   t.merge,
	}, nil
}

// buildAuthenticationStructure collects, once each, every sibling digest
// needed to verify leafIndices that is not itself among the revealed leafs.
func (t *Tree) buildAuthenticationStructure(leafIndices []LeafIndex) []sponge.Digest {
	numLeafs := t.NumLeafs()
	height := t.Height()

	revealed := make(map[NodeIndex]bool)
	for _, idx := range leafIndices {
		revealed[numLeafs+idx] = true
	}

	var authNodes []sponge.Digest
	for _, leafIdx := range leafIndices {
		nodeIndex := numLeafs + leafIdx
		for level := uint32(0); level < height; level++ {
			siblingIndex := nodeIndex ^ 1
			parentIndex := nodeIndex / 2

			if !revealed[siblingIndex] {
				authNodes = append(authNodes, t.nodes[siblingIndex])
				revealed[siblingIndex] = true
			}
			revealed[parentIndex] = true
			nodeIndex = parentIndex
		}
	}
	return authNodes
}

// Verify recomputes the root from the proof's leafs and authentication
// structure and compares it to root.
func (proof *InclusionProof) Verify(root sponge.Digest) bool {
	if len(proof.IndexedLeafs) == 0 {
		return false
	}
	pt := newPartialTree(proof.merge, proof.TreeHeight, proof.IndexedLeafs, proof.AuthenticationStructure)
	return pt.computeRoot().Equal(root)
}

// partialTree reconstructs just enough of a tree to verify a batched proof.
type partialTree struct {
	merge       MergeFunc
	treeHeight  Height
	leafIndices []LeafIndex
	nodes       map[NodeIndex]sponge.Digest
}

func newPartialTree(merge MergeFunc, height Height, indexedLeafs []LeafIndexDigestPair, authStructure []sponge.Digest) *partialTree {
	nodes := make(map[NodeIndex]sponge.Digest)
	leafIndices := make([]LeafIndex, len(indexedLeafs))
	numLeafs := uint64(1) << height

	for i, pair := range indexedLeafs {
		nodes[numLeafs+pair.Index] = pair.Digest
		leafIndices[i] = pair.Index
	}

	// known mirrors buildAuthenticationStructure's revealed set, so that
	// siblings computable from an earlier leaf's path consume no entry.
	known := make(map[NodeIndex]bool)
	for idx := range nodes {
		known[idx] = true
	}

	authIdx := 0
	for _, leafIdx := range leafIndices {
		nodeIndex := numLeafs + leafIdx
		for level := uint32(0); level < height; level++ {
			siblingIndex := nodeIndex ^ 1
			if !known[siblingIndex] && authIdx < len(authStructure) {
				nodes[siblingIndex] = authStructure[authIdx]
				authIdx++
			}
			known[siblingIndex] = true
			nodeIndex /= 2
			known[nodeIndex] = true
		}
	}

	return &partialTree{merge: merge, treeHeight: height, leafIndices: leafIndices, nodes: nodes}
}

func (pt *partialTree) computeRoot() sponge.Digest {
	for level := pt.treeHeight; level > 0; level-- {
		levelStart := uint64(1) << level
		for nodeIdx := levelStart; nodeIdx < 2*levelStart; nodeIdx += 2 {
			left, leftOK := pt.nodes[nodeIdx]
			right, rightOK := pt.nodes[nodeIdx+1]
			if leftOK && rightOK {
				pt.nodes[nodeIdx/2] = pt.merge(left, right)
			}
		}
	}

	if root, ok := pt.nodes[RootIndex]; ok {
		return root
	}
	return nil
}

func isPowerOfTwo(n uint32) bool {
	return n > 0 && (n&(n-1) == 0)
}
