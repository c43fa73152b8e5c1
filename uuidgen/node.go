package uuidgen

import (
	"crypto/rand"
	"log"
	"net"
	"os"
)

// First byte of the low word. Bits "10" mark the RFC 4122 variant, the
// remaining bits are filled in by the clock sequence.
const variantByte = 0x80

/*
  Resolves the bytes that identify this machine. Lookup is best effort
  and never fails: each probe that errors is logged and processing moves
  on to the next tier.

  1. Hardware address of the interface bound to the local host address
  2. Hardware address of the first interface that is up and not loopback
  3. Raw bytes of the local host address
  4. 6 random bytes
*/
func resolveNodeBytes() []byte {

	hostAddr, err := hostAddress()
	if err != nil {
		log.Printf("uuidgen: host address lookup failed (%v)\n", err)
	} else {
		if mac, err := hardwareAddrBoundTo(hostAddr); err == nil {
			return mac
		} else {
			log.Printf("uuidgen: no usable interface bound to %v (%v)\n", hostAddr, err)
		}
	}

	if mac, err := firstHardwareAddr(); err == nil {
		return mac
	} else {
		log.Printf("uuidgen: interface enumeration gave no hardware address (%v)\n", err)
	}

	if hostAddr != nil {
		if ip4 := hostAddr.To4(); ip4 != nil {
			return ip4
		}
		return hostAddr
	}

	randomBytes := make([]byte, 6)
	if _, err := rand.Read(randomBytes); err != nil {
		// crypto/rand never fails on supported platforms
		log.Printf("uuidgen: random node fallback failed (%v)\n", err)
	}
	return randomBytes
}

// hostAddress returns the first address the local host name resolves to
func hostAddress() (net.IP, error) {

	name, err := os.Hostname()
	if err != nil {
		return nil, err
	}

	addrs, err := net.LookupIP(name)
	if err != nil {
		return nil, err
	}

	if len(addrs) == 0 {
		return nil, ErrNoHostAddress
	}

	return addrs[0], nil
}

// hardwareAddrBoundTo returns the hardware address of the interface the
// given IP is assigned to, provided that interface is up and not loopback
func hardwareAddrBoundTo(ip net.IP) ([]byte, error) {

	interfaces, err := net.Interfaces()
	if err != nil {
		return nil, err
	}

	for _, iface := range interfaces {

		if iface.Flags&net.FlagLoopback != 0 || iface.Flags&net.FlagUp == 0 {
			continue
		}

		addrs, err := iface.Addrs()
		if err != nil {
			continue
		}

		for _, addr := range addrs {

			var ifaceIP net.IP

			switch v := addr.(type) {
			case *net.IPNet:
				ifaceIP = v.IP
			case *net.IPAddr:
				ifaceIP = v.IP
			}

			if ifaceIP != nil && ifaceIP.Equal(ip) && len(iface.HardwareAddr) > 0 {
				return iface.HardwareAddr, nil
			}
		}
	}

	return nil, ErrNoHardwareAddr
}

// firstHardwareAddr returns the hardware address of the first interface,
// in enumeration order, that is up, not loopback and has one
func firstHardwareAddr() ([]byte, error) {

	interfaces, err := net.Interfaces()
	if err != nil {
		return nil, err
	}

	for _, iface := range interfaces {
		if iface.Flags&net.FlagLoopback == 0 && iface.Flags&net.FlagUp != 0 &&
			len(iface.HardwareAddr) > 0 {
			return iface.HardwareAddr, nil
		}
	}

	return nil, ErrNoHardwareAddr
}

// newNodeBuffer packs the node bytes into the 8-byte low word template.
// byte0 is the variant marker and byte1 is left zero for the clock
// sequence. Sources shorter than 6 bytes are right-aligned so they end at
// the last byte; longer sources keep only their trailing 6 bytes.
func newNodeBuffer(src []byte) [8]byte {

	var node [8]byte
	node[0] = variantByte

	if len(src) > 6 {
		src = src[len(src)-6:]
	}

	copy(node[8-len(src):], src)
	return node
}
