package Trees

import "math/bits"

// bitArray is a fixed size set of small integers.
type bitArray []uint

func newBitArray(size int) bitArray {
	return make(bitArray, (size+bits.UintSize-1)/bits.UintSize)
}

func (u bitArray) Get(i int) bool {
	return (u[i/bits.UintSize]>>(i%bits.UintSize))&1 == 1
}

func (u bitArray) Up(i int) {
	u[i/bits.UintSize] |= 1 << (i % bits.UintSize)
}
