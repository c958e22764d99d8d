package socks5

import (
	"encoding/binary"
	"errors"
	"fmt"
	"net"
	"net/netip"
	"strconv"

	"github.com/die-net/socksd/internal/atyp"
)

const maxDomainLen = 255

var (
	errEmptyHost  = errors.New("empty host")
	errLongDomain = errors.New("domain name longer than 255 bytes")
)

// EncodeAddr returns the address type of host and its DST.ADDR/BND.ADDR
// bytes. Domain names are returned without the length prefix; the
// txthinking message constructors add it.
func EncodeAddr(host string) (atyp.Type, []byte, error) {
	if host == "" {
		return 0, nil, errEmptyHost
	}

	t := atyp.Classify(host)
	switch t {
	case atyp.IPv4:
		a4 := netip.MustParseAddr(host).As4()
		return t, a4[:], nil
	case atyp.IPv6:
		a16 := netip.MustParseAddr(host).As16()
		return t, a16[:], nil
	default:
		if len(host) > maxDomainLen {
			return 0, nil, fmt.Errorf("%w: %d", errLongDomain, len(host))
		}
		return t, []byte(host), nil
	}
}

// EncodePort returns port as the two byte big-endian DST.PORT/BND.PORT field.
func EncodePort(port string) ([]byte, error) {
	n, err := strconv.ParseUint(port, 10, 16)
	if err != nil {
		return nil, fmt.Errorf("invalid port %q: %w", port, err)
	}
	b := make([]byte, 2)
	binary.BigEndian.PutUint16(b, uint16(n))
	return b, nil
}

func encodeHostPort(address string) (atyp.Type, []byte, []byte, error) {
	host, port, err := net.SplitHostPort(address)
	if err != nil {
		return 0, nil, nil, fmt.Errorf("parse address: %w", err)
	}
	t, addr, err := EncodeAddr(host)
	if err != nil {
		return 0, nil, nil, fmt.Errorf("encode host %q: %w", host, err)
	}
	p, err := EncodePort(port)
	if err != nil {
		return 0, nil, nil, err
	}
	return t, addr, p, nil
}
