// Package tlsutil loads and generates TLS material for the gRPC transport.
package tlsutil

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/tls"
	"crypto/x509"
	"crypto/x509/pkix"
	"encoding/pem"
	"errors"
	"fmt"
	"math/big"
	"net"
	"os"
	"path/filepath"
	"time"

	"google.golang.org/grpc/credentials"
)

// ErrNoCertificates is returned when a CA file holds no parsable certificate.
var ErrNoCertificates = errors.New("tlsutil: no certificates found")

// ServerTLSConfig loads TLS credentials for a gRPC server from cert and key files.
func ServerTLSConfig(certFile, keyFile string) (credentials.TransportCredentials, error) {
	cert, err := tls.LoadX509KeyPair(certFile, keyFile)
	if err != nil {
		return nil, fmt.Errorf("tlsutil: load server key pair: %w", err)
	}
	return credentials.NewTLS(&tls.Config{
		Certificates: []tls.Certificate{cert},
		MinVersion:   tls.VersionTLS12,
	}), nil
}

// ClientTLSConfig builds client credentials that trust the CA in caFile, or
// the system pool when caFile is empty. serverName overrides the name checked
// against the server certificate.
func ClientTLSConfig(caFile, serverName string) (credentials.TransportCredentials, error) {
	cfg := &tls.Config{
		MinVersion: tls.VersionTLS12,
		ServerName: serverName,
	}
	if caFile != "" {
		pool, err := loadCertPool(caFile)
		if err != nil {
			return nil, err
		}
		cfg.RootCAs = pool
	}
	return credentials.NewTLS(cfg), nil
}

func loadCertPool(caFile string) (*x509.CertPool, error) {
	caPEM, err := os.ReadFile(caFile)
	if err != nil {
		return nil, fmt.Errorf("tlsutil: read CA file: %w", err)
	}
	pool := x509.NewCertPool()
	if !pool.AppendCertsFromPEM(caPEM) {
		return nil, fmt.Errorf("%w in %s", ErrNoCertificates, caFile)
	}
	return pool, nil
}

// DevCertificates are the file paths written by GenerateDevCertificates.
type DevCertificates struct {
	CAFile   string
	CertFile string
	KeyFile  string
}

// GenerateDevCertificates writes a throwaway CA and a server certificate for
// hosts into outDir. Hosts that parse as IPs become IP SANs.
func GenerateDevCertificates(hosts []string, outDir string) (DevCertificates, error) {
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return DevCertificates{}, fmt.Errorf("tlsutil: mkdir %s: %w", outDir, err)
	}

	now := time.Now()
	ca, caKey, err := issue(&x509.Certificate{
		SerialNumber:          big.NewInt(1),
		Subject:               pkix.Name{Organization: []string{"Eligibility Dev CA"}},
		NotBefore:             now,
		NotAfter:              now.AddDate(1, 0, 0),
		KeyUsage:              x509.KeyUsageCertSign | x509.KeyUsageCRLSign,
		BasicConstraintsValid: true,
		IsCA:                  true,
	}, nil, nil)
	if err != nil {
		return DevCertificates{}, err
	}

	leafTemplate := &x509.Certificate{
		SerialNumber: big.NewInt(2),
		Subject:      pkix.Name{Organization: []string{"Eligibility Dev"}},
		NotBefore:    now,
		NotAfter:     now.AddDate(0, 3, 0),
		KeyUsage:     x509.KeyUsageDigitalSignature,
		ExtKeyUsage:  []x509.ExtKeyUsage{x509.ExtKeyUsageServerAuth},
	}
	for _, h := range hosts {
		if ip := net.ParseIP(h); ip != nil {
			leafTemplate.IPAddresses = append(leafTemplate.IPAddresses, ip)
		} else {
			leafTemplate.DNSNames = append(leafTemplate.DNSNames, h)
		}
	}
	leaf, leafKey, err := issue(leafTemplate, ca, caKey)
	if err != nil {
		return DevCertificates{}, err
	}

	keyDER, err := x509.MarshalECPrivateKey(leafKey)
	if err != nil {
		return DevCertificates{}, fmt.Errorf("tlsutil: marshal server key: %w", err)
	}

	out := DevCertificates{
		CAFile:   filepath.Join(outDir, "ca.pem"),
		CertFile: filepath.Join(outDir, "server.pem"),
		KeyFile:  filepath.Join(outDir, "server-key.pem"),
	}
	for _, f := range []struct {
		path, blockType string
		der             []byte
	}{
		{out.CAFile, "CERTIFICATE", ca.Raw},
		{out.CertFile, "CERTIFICATE", leaf.Raw},
		{out.KeyFile, "EC PRIVATE KEY", keyDER},
	} {
		if err := writePEM(f.path, f.blockType, f.der); err != nil {
			return DevCertificates{}, err
		}
	}
	return out, nil
}

// issue signs template with parent/parentKey, or self-signs when parent is nil.
func issue(template, parent *x509.Certificate, parentKey *ecdsa.PrivateKey) (*x509.Certificate, *ecdsa.PrivateKey, error) {
	key, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	if err != nil {
		return nil, nil, fmt.Errorf("tlsutil: generate key: %w", err)
	}
	if parent == nil {
		parent, parentKey = template, key
	}
	der, err := x509.CreateCertificate(rand.Reader, template, parent, &key.PublicKey, parentKey)
	if err != nil {
		return nil, nil, fmt.Errorf("tlsutil: create certificate: %w", err)
	}
	cert, err := x509.ParseCertificate(der)
	if err != nil {
		return nil, nil, fmt.Errorf("tlsutil: parse certificate: %w", err)
	}
	return cert, key, nil
}

func writePEM(path, blockType string, data []byte) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("tlsutil: write %s: %w", path, err)
	}
	if err := pem.Encode(f, &pem.Block{Type: blockType, Bytes: data}); err != nil {
		_ = f.Close()
		return fmt.Errorf("tlsutil: encode %s: %w", path, err)
	}
	return f.Close()
}
