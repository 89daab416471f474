package creature

// EncodeCorpseTexture packs a texture (archive, record) pair into the single
// integer key stored on a profile. Record indices must fit 16 bits; callers
// own that bound.
func EncodeCorpseTexture(archive, record int) int {
	return archive<<16 | record&0xFFFF
}

// DecodeCorpseTexture unpacks a corpse-texture key back into its
// (archive, record) pair.
func DecodeCorpseTexture(packed int) (archive, record int) {
	return packed >> 16, packed & 0xFFFF
}
