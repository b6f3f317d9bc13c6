// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package certificate

import (
	"crypto/tls"
	"os"

	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/aitrustd/fault"
	"github.com/bitmark-inc/aitrustd/util"
	"github.com/bitmark-inc/logger"
)

// Get - verify a PEM certificate and key pair and return the TLS setup
// with the SHA3-256 fingerprint of the certificate
func Get(log *logger.L, name, certificate, key string) (*tls.Config, [32]byte, error) {
	var fin [32]byte

	keyPair, err := tls.X509KeyPair([]byte(certificate), []byte(key))
	if nil != err {
		log.Errorf("%s failed to load keypair: %v", name, err)
		return nil, fin, err
	}

	tlsConfiguration := &tls.Config{
		Certificates: []tls.Certificate{
			keyPair,
		},
		MinVersion: tls.VersionTLS12,
	}

	fin = Fingerprint(keyPair.Certificate[0])

	return tlsConfiguration, fin, nil
}

// Read - load a certificate and key from files and Get them
func Read(log *logger.L, name, certificateFile, keyFile string) (*tls.Config, [32]byte, error) {
	var fin [32]byte

	if !util.EnsureFileExists(certificateFile) || !util.EnsureFileExists(keyFile) {
		log.Errorf("%s certificate: %q  key: %q  not found", name, certificateFile, keyFile)
		return nil, fin, fault.CertificateFileNotFound
	}

	certificate, err := os.ReadFile(certificateFile)
	if nil != err {
		return nil, fin, err
	}
	key, err := os.ReadFile(keyFile)
	if nil != err {
		return nil, fin, err
	}
	return Get(log, name, string(certificate), string(key))
}

// Fingerprint - compute the fingerprint of a DER certificate
//
// openssl x509 -outform DER -in aitrustd-local-rpc.crt | sha3sum -a 256
func Fingerprint(certificate []byte) [32]byte {
	return sha3.Sum256(certificate)
}
