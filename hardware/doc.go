// Package hardware assembles every subsystem package into a Neo Geo
// AES/MVS System aggregate and drives it: the master scheduler, hard
// and soft reset, NEO cartridge and BIOS loading, and top-level save
// state. The 68000 and Z80 instruction decoders, and the YM2610's
// FM/ADPCM/SSG sample synthesis, are supplied by the caller through the
// narrow interfaces their owning packages declare; this package only
// ever reaches them through those interfaces.
package hardware
