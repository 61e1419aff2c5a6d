// Package cdp implements the Cisco Discovery Protocol for simulated
// devices: the TLV packet codec, advertisement building and decoding, and
// the neighbor table lifecycle.
//
// Advertisements are real CDP packets (version, TTL, Internet checksum,
// TLV list) carried in 802.3 LLC/SNAP frames, so captures dissect cleanly
// in gopacket and Wireshark.
package cdp
