package tx

import (
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/common/hexutil"
)

// Signature is produced by a Signer over a message's bytes.
type Signature struct {
	PubKey    hexutil.Bytes `json:"pubKey"`
	Signature hexutil.Bytes `json:"signature"`
}

// Signer signs canonical message bytes. Key derivation and the signature
// scheme are owned by the implementation.
type Signer interface {
	Sign(message []byte) (*Signature, error)
}

// SignedMessage pairs a message with its signing bytes and signature.
type SignedMessage struct {
	Message   Message
	Bytes     []byte
	Signature *Signature
}

var errNilSignature = errors.New("signer returned no signature")

// Sign encodes m and passes the canonical bytes to s.
// Encoding errors are returned before the signer is invoked.
func Sign(m Message, s Signer) (*SignedMessage, error) {
	msg, err := m.Bytes()
	if err != nil {
		return nil, err
	}

	sig, err := s.Sign(msg)
	if err != nil {
		return nil, fmt.Errorf("sign %s: %w", m.Type(), err)
	}

	if sig == nil {
		return nil, fmt.Errorf("sign %s: %w", m.Type(), errNilSignature)
	}

	return &SignedMessage{Message: m, Bytes: msg, Signature: sig}, nil
}
