package apihelpers

import (
	"crypto/tls"
	"crypto/x509"
	"fmt"
	"os"
)

type CertificatePaths struct {
	ServerCertPath string
	ServerKeyPath  string
	CACertPath     string
}

// LoadTLSConfig prepares a server TLS config that requires client
// certificates signed by the configured CA.
func LoadTLSConfig(paths CertificatePaths) (*tls.Config, error) {
	serverCert, err := tls.LoadX509KeyPair(paths.ServerCertPath, paths.ServerKeyPath)
	if err != nil {
		return nil, fmt.Errorf("loading server certificate: %w", err)
	}

	caCert, err := os.ReadFile(paths.CACertPath)
	if err != nil {
		return nil, fmt.Errorf("reading CA certificate: %w", err)
	}

	caCertPool := x509.NewCertPool()
	if !caCertPool.AppendCertsFromPEM(caCert) {
		return nil, fmt.Errorf("no CA certificates found in %s", paths.CACertPath)
	}

	return &tls.Config{
		Certificates: []tls.Certificate{serverCert},
		ClientAuth:   tls.RequireAndVerifyClientCert,
		ClientCAs:    caCertPool,
	}, nil
}
