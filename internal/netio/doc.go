// Package netio carries simulated control-plane frames between devices.
//
// Frames are real IEEE 802.3 frames built with gopacket (LLC for BPDUs,
// LLC/SNAP for CDP). The Fabric resolves the far end of a cable through the
// topology and delivers frames synchronously into the receiving protocol's
// Mailbox. A Capture records everything the fabric carries to a pcap file.
// Nothing here touches a real NIC.
package netio
