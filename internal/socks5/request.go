package socks5

import (
	txsocks5 "github.com/txthinking/socks5"
)

// CmdConnect is the SOCKS5 CONNECT command value.
const CmdConnect = txsocks5.CmdConnect

// NewRequest builds a request for cmd to the host:port in address.
func NewRequest(cmd byte, address string) (*txsocks5.Request, error) {
	t, addr, port, err := encodeHostPort(address)
	if err != nil {
		return nil, err
	}
	return txsocks5.NewRequest(cmd, byte(t), addr, port), nil
}
