package main

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"io"
	"net"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/die-net/socksd/internal/atyp"
	"github.com/die-net/socksd/internal/socks5"
)

// Values accepted by --encode.
const (
	encodeAddr    = "addr"
	encodeConnect = "connect"
	encodeReply   = "reply"
	encodeRefused = "refused"
)

func newClassifyCmd() *cobra.Command {
	var (
		encode string
		port   uint16
	)

	cmd := &cobra.Command{
		Use:   "classify HOST...",
		Short: "Print the SOCKS5 address type of each host",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			for _, host := range args {
				t := atyp.Classify(host)
				if encode == "" {
					fmt.Fprintf(w, "%s\t%s\n", host, t)
					continue
				}

				b, err := encodeMessage(encode, host, port)
				if err != nil {
					return fmt.Errorf("encode %q: %w", host, err)
				}
				fmt.Fprintf(w, "%s\t%s\t%s\n", host, t, hex.EncodeToString(b))
			}
			return nil
		},
	}
	fs := cmd.Flags()
	fs.StringVar(&encode, "encode", "", "Also print a hex SOCKS5 encoding for each host: addr | connect | reply | refused")
	fs.Lookup("encode").NoOptDefVal = encodeAddr
	fs.Uint16Var(&port, "port", 1080, "Port used in connect and reply encodings")
	fs.SortFlags = false
	return cmd
}

// encodeMessage serializes the SOCKS5 message selected by kind. For addr only
// the ATYP and address field of a CONNECT request are returned.
func encodeMessage(kind, host string, port uint16) ([]byte, error) {
	address := net.JoinHostPort(host, strconv.Itoa(int(port)))

	var msg io.WriterTo
	switch kind {
	case encodeAddr, encodeConnect:
		req, err := socks5.NewRequest(socks5.CmdConnect, address)
		if err != nil {
			return nil, err
		}
		msg = req
	case encodeReply:
		rep, err := socks5.NewReply(socks5.RepSuccess, address)
		if err != nil {
			return nil, err
		}
		msg = rep
	case encodeRefused:
		msg = socks5.NewZeroAddrReply(socks5.RepConnectionRefused, atyp.Classify(host))
	default:
		return nil, fmt.Errorf("unknown encoding %q", kind)
	}

	var buf bytes.Buffer
	if _, err := msg.WriteTo(&buf); err != nil {
		return nil, err
	}
	b := buf.Bytes()
	if kind == encodeAddr {
		// VER CMD RSV precede ATYP, DST.PORT follows the address.
		b = b[3 : len(b)-2]
	}
	return b, nil
}
