// Package socks5 builds SOCKS5 request and reply messages for socksd.
//
// It selects the address encoding from atyp.Classify and hands the bytes to the
// message types in github.com/txthinking/socks5: IPv4 and IPv6 literals are
// written as fixed 4 and 16 byte addresses, everything else as a
// length-prefixed domain name.
//
// Messages are built in memory. Writing them to a connection, and the
// negotiation around that, belongs to the caller.
package socks5
