package socks5

import (
	"net"

	txsocks5 "github.com/txthinking/socks5"

	"github.com/die-net/socksd/internal/atyp"
)

// Reply codes used by socksd.
const (
	RepSuccess           = txsocks5.RepSuccess
	RepConnectionRefused = txsocks5.RepConnectionRefused
)

// NewReply builds a reply with rep and the bound host:port in address.
func NewReply(rep byte, address string) (*txsocks5.Reply, error) {
	t, addr, port, err := encodeHostPort(address)
	if err != nil {
		return nil, err
	}
	return txsocks5.NewReply(rep, byte(t), addr, port), nil
}

// NewZeroAddrReply builds a failure reply whose bound address is the zero
// address of the same family as t. Domain requests get an IPv4 zero address.
func NewZeroAddrReply(rep byte, t atyp.Type) *txsocks5.Reply {
	if t == atyp.IPv6 {
		return txsocks5.NewReply(rep, byte(atyp.IPv6), []byte(net.IPv6zero), []byte{0x00, 0x00})
	}
	return txsocks5.NewReply(rep, byte(atyp.IPv4), []byte{0x00, 0x00, 0x00, 0x00}, []byte{0x00, 0x00})
}
