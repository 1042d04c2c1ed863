// Copyright The sysstat Authors
// SPDX-License-Identifier: Apache-2.0

package otelexport // import "github.com/sysstat/sapcp/otelexport"

import (
	"context"
	"crypto/tls"
	"fmt"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/collector/pdata/pmetric"
	"go.opentelemetry.io/collector/pdata/pmetric/pmetricotlp"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/encoding/gzip"
)

// defaultMaxRPCMsgSize bounds the size of a single OTLP export message.
const defaultMaxRPCMsgSize = 32 << 20

// Config holds the connection parameters for an OTLP/gRPC receiver.
type Config struct {
	// Addr is the host:port of the receiver.
	Addr string
	// DisableTLS sends over plaintext, for receivers on localhost.
	DisableTLS bool
	// MaxRPCMsgSize caps sent and received message sizes. Zero selects
	// the default.
	MaxRPCMsgSize int
}

// Exporter sends OTLP metrics over a shared gRPC connection.
type Exporter struct {
	conn   *grpc.ClientConn
	client pmetricotlp.GRPCClient
}

// setupGrpcConnection sets up the gRPC connection to the receiver.
func setupGrpcConnection(c *Config) (*grpc.ClientConn, error) {
	msgSize := c.MaxRPCMsgSize
	if msgSize == 0 {
		msgSize = defaultMaxRPCMsgSize
	}
	opts := []grpc.DialOption{
		grpc.WithDefaultCallOptions(
			grpc.MaxCallRecvMsgSize(msgSize),
			grpc.MaxCallSendMsgSize(msgSize)),
	}

	if c.DisableTLS {
		opts = append(opts, grpc.WithTransportCredentials(insecure.NewCredentials()))
	} else {
		opts = append(opts,
			grpc.WithTransportCredentials(credentials.NewTLS(&tls.Config{
				// Support only TLS1.3+ with valid CA certificates
				MinVersion:         tls.VersionTLS13,
				InsecureSkipVerify: false,
			})))
	}

	return grpc.NewClient(c.Addr, opts...)
}

// New connects to the receiver named in c.
func New(c *Config) (*Exporter, error) {
	conn, err := setupGrpcConnection(c)
	if err != nil {
		return nil, fmt.Errorf("connecting to %s: %w", c.Addr, err)
	}
	return &Exporter{
		conn:   conn,
		client: pmetricotlp.NewGRPCClient(conn),
	}, nil
}

// Export sends one metrics payload and waits for the receiver response.
func (e *Exporter) Export(ctx context.Context, md pmetric.Metrics) error {
	req := pmetricotlp.NewExportRequestFromMetrics(md)
	resp, err := e.client.Export(ctx, req, grpc.UseCompressor(gzip.Name))
	if err != nil {
		return err
	}
	if ps := resp.PartialSuccess(); ps.RejectedDataPoints() > 0 {
		log.Warnf("Receiver rejected %d data points: %s",
			ps.RejectedDataPoints(), ps.ErrorMessage())
	}
	return nil
}

// Close tears down the connection.
func (e *Exporter) Close() error {
	return e.conn.Close()
}
