package atyp

import (
	"errors"
	"fmt"
	"net/netip"

	txsocks5 "github.com/txthinking/socks5"
)

// Type is a SOCKS5 address type. Its value is the ATYP byte on the wire.
type Type byte

const (
	IPv4   = Type(txsocks5.ATYPIPv4)
	Domain = Type(txsocks5.ATYPDomain)
	IPv6   = Type(txsocks5.ATYPIPv6)
)

// ErrUnknownType is returned by Parse for bytes that are not a known ATYP.
var ErrUnknownType = errors.New("unknown address type")

// Classify returns the address type of host. Hosts that parse as neither an
// IPv4 nor an IPv6 literal are reported as Domain.
func Classify(host string) Type {
	ip, err := netip.ParseAddr(host)
	if err != nil {
		return Domain
	}
	if ip.Is4() {
		return IPv4
	}
	return IPv6
}

// Parse converts an ATYP byte read from a peer into a Type.
func Parse(b byte) (Type, error) {
	t := Type(b)
	if !t.Valid() {
		return 0, fmt.Errorf("%w: 0x%02x", ErrUnknownType, b)
	}
	return t, nil
}

// Valid reports whether t is one of IPv4, IPv6 or Domain.
func (t Type) Valid() bool {
	switch t {
	case IPv4, IPv6, Domain:
		return true
	default:
		return false
	}
}

func (t Type) String() string {
	switch t {
	case IPv4:
		return "IPV4"
	case IPv6:
		return "IPV6"
	case Domain:
		return "DOMAIN"
	default:
		return fmt.Sprintf("Type(0x%02x)", byte(t))
	}
}
