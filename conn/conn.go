// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package conn provides static sparse connectivity between a sending (pre)
and receiving (post) population, with a parallel weight value per edge.

Edges are stored in pre-major order: all edges from pre unit 0, in
increasing post order, then pre unit 1, etc.  Sender-side indexes are
therefore contiguous ranges, and receiver-side access goes through
RSynIndex, which lists edge indexes ordered by post unit.  Topology is
fixed once built; only Wt changes.
*/
package conn

import (
	"fmt"
	"log"
	"strings"
	"unsafe"

	"github.com/c2h5oh/datasize"
	"github.com/emer/emergent/prjn"
	"github.com/emer/etable/etensor"
	"github.com/emer/stdp/errs"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// Conn is a sparse edge list between PreN sending and PostN receiving units.
type Conn struct {

	// number of units in the sending population
	PreN int

	// number of units in the receiving population
	PostN int

	// sending unit index for each edge
	Pre []int32

	// receiving unit index for each edge
	Post []int32

	// synaptic weight for each edge -- shared between synapse (reads) and learner (reads + writes)
	Wt []float64

	// number of sending connections for each pre unit
	SConN []int32

	// starting edge index for each pre unit -- edges of pre unit i are SConIndexSt[i] .. SConIndexSt[i]+SConN[i]
	SConIndexSt []int32

	// number of receiving connections for each post unit
	RConN []int32

	// starting index into RSynIndex for each post unit
	RConIndexSt []int32

	// edge index for each recv unit x connection, ordered by post unit then pre unit
	RSynIndex []int32
}

// NEdges returns the number of edges
func (cn *Conn) NEdges() int {
	return len(cn.Pre)
}

// SendEdges returns the half-open range of edge indexes sent by pre unit pi
func (cn *Conn) SendEdges(pi int) (st, ed int) {
	st = int(cn.SConIndexSt[pi])
	return st, st + int(cn.SConN[pi])
}

// RecvEdges returns the edge indexes received by post unit ri.
// The returned slice must not be modified.
func (cn *Conn) RecvEdges(ri int) []int32 {
	st := cn.RConIndexSt[ri]
	return cn.RSynIndex[st : st+cn.RConN[ri]]
}

// FixedProb returns connectivity where each of the preN x postN candidate
// pairs is included independently with probability prob, sampled from src
// in pre-major order.  This is independent Bernoulli sampling per pair,
// unlike prjn.UnifRnd which draws a fixed number of connections per unit.  A nil src uses the global source, which is not
// reproducible.
func FixedProb(preN, postN int, prob float64, src rand.Source) (*Conn, error) {
	if !(prob >= 0 && prob <= 1) {
		return nil, errs.Config("Prob", prob, "connection probability must be in [0, 1]")
	}
	if err := checkSizes(preN, postN); err != nil {
		return nil, err
	}
	bern := distuv.Bernoulli{P: prob, Src: src}
	cons := make([]bool, preN*postN)
	for i := range cons {
		cons[i] = bern.Rand() == 1
	}
	return newFromBits(preN, postN, cons), nil
}

// AllToAll returns full connectivity from every pre unit to every post unit
func AllToAll(preN, postN int) (*Conn, error) {
	return FromPattern(preN, postN, prjn.NewFull())
}

// OneToOne connects pre unit i to post unit i -- sizes must be equal
func OneToOne(preN, postN int) (*Conn, error) {
	if err := checkSizes(preN, postN); err != nil {
		return nil, err
	}
	if preN != postN {
		return nil, errs.Config("PostN", float64(postN), fmt.Sprintf("one-to-one requires equal sizes, pre has %d", preN))
	}
	return FromPattern(preN, postN, prjn.NewOneToOne())
}

// FromPattern returns the connectivity given by an emergent projection
// pattern between flat pre and post populations.  Pattern.Connect returns
// its bits in recv-major order (recv * preN + send), which is transposed
// here into the pre-major edge order.
func FromPattern(preN, postN int, pat prjn.Pattern) (*Conn, error) {
	if err := checkSizes(preN, postN); err != nil {
		return nil, err
	}
	if pat == nil {
		return nil, errs.Config("Pattern", 0, "projection pattern must not be nil")
	}
	ssh := etensor.NewShape([]int{preN}, nil, nil)
	rsh := etensor.NewShape([]int{postN}, nil, nil)
	_, _, cbits := pat.Connect(ssh, rsh, false)
	cons := make([]bool, preN*postN)
	for ri := 0; ri < postN; ri++ {
		rbi := ri * preN // recv bit index
		for si := 0; si < preN; si++ {
			cons[si*postN+ri] = cbits.Values.Index(rbi + si)
		}
	}
	return newFromBits(preN, postN, cons), nil
}

func checkSizes(preN, postN int) error {
	if preN <= 0 {
		return errs.Config("PreN", float64(preN), "must be > 0")
	}
	if postN <= 0 {
		return errs.Config("PostN", float64(postN), "must be > 0")
	}
	return nil
}

// newFromBits builds the edge list and indexes from a pre-major
// connection bit pattern: cons[pre*postN + post].
func newFromBits(preN, postN int, cons []bool) *Conn {
	cn := &Conn{PreN: preN, PostN: postN}
	cn.SConN = make([]int32, preN)
	cn.RConN = make([]int32, postN)
	for si := 0; si < preN; si++ {
		for ri := 0; ri < postN; ri++ {
			if cons[si*postN+ri] {
				cn.SConN[si]++
				cn.RConN[ri]++
			}
		}
	}
	tcons := setIndexSt(cn.SConN, &cn.SConIndexSt)
	tconr := setIndexSt(cn.RConN, &cn.RConIndexSt)
	if tconr != tcons {
		log.Printf("conn programmer error: total recv cons %v != total send cons %v\n", tconr, tcons)
	}
	cn.Pre = make([]int32, tcons)
	cn.Post = make([]int32, tcons)
	cn.Wt = make([]float64, tcons)
	cn.RSynIndex = make([]int32, tconr)

	rconN := make([]int32, postN) // temporary mem to track cur n of recv cons
	ei := int32(0)
	for si := 0; si < preN; si++ {
		for ri := 0; ri < postN; ri++ {
			if !cons[si*postN+ri] {
				continue
			}
			cn.Pre[ei] = int32(si)
			cn.Post[ei] = int32(ri)
			rci := rconN[ri]
			if rci >= cn.RConN[ri] {
				log.Printf("conn programmer error: recv target total con number: %v exceeded at recv idx: %v, send idx: %v\n", cn.RConN[ri], ri, si)
				break
			}
			cn.RSynIndex[cn.RConIndexSt[ri]+rci] = ei
			rconN[ri]++
			ei++
		}
	}
	return cn
}

// setIndexSt sets the starting indexes from the counts n,
// returning the total number of connections.
func setIndexSt(n []int32, idxst *[]int32) int32 {
	*idxst = make([]int32, len(n))
	idx := int32(0)
	for i, nv := range n {
		(*idxst)[i] = idx
		idx += nv
	}
	return idx
}

// SizeReport returns a string reporting the number of edges
// and the memory footprint of the connectivity.
func (cn *Conn) SizeReport() string {
	var b strings.Builder
	ne := cn.NEdges()
	emem := ne * (2*int(unsafe.Sizeof(int32(0))) + int(unsafe.Sizeof(float64(0))))
	imem := (len(cn.SConN) + len(cn.SConIndexSt) + len(cn.RConN) + len(cn.RConIndexSt) + len(cn.RSynIndex)) * int(unsafe.Sizeof(int32(0)))
	fmt.Fprintf(&b, "Pre: %d\t Post: %d\t Edges: %d\t EdgeMem: %v\t IndexMem: %v\n", cn.PreN, cn.PostN, ne,
		(datasize.ByteSize)(emem).HumanReadable(), (datasize.ByteSize)(imem).HumanReadable())
	return b.String()
}
