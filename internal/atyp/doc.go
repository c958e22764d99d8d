// Package atyp classifies destination hosts into the SOCKS5 address type
// (ATYP) categories used when encoding protocol messages.
//
// Classification is total: anything that is not an IPv4 or IPv6 literal is a
// domain name to be resolved later, never an error.
package atyp
