package addr

import (
	"github.com/pkg/errors"
	"net"
	"strconv"
)

// DefaultPort is used when the address does not name a port.
const DefaultPort = 8080

// ResolveHostAddress will take an address as a string and try to parse it into a net.TCPAddr using
// `net.ResolveTCPAddr`. An address without a port, e.g. "localhost", gets the DefaultPort. If
// unsuccessful, it will wrap an error and return it.
func ResolveHostAddress(addr string) (*net.TCPAddr, error) {
	if _, _, err := net.SplitHostPort(addr); err != nil {
		addr = net.JoinHostPort(addr, strconv.Itoa(DefaultPort))
	}
	address, err := net.ResolveTCPAddr("tcp", addr)
	if err != nil {
		return nil, errors.Wrapf(err, "Could not deduct host and port from %v", addr)
	}
	return address, nil
}
