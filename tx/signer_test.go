package tx

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/zkwire/errs"
)

type recordingSigner struct {
	seen [][]byte
	sig  *Signature
	err  error
}

func (s *recordingSigner) Sign(message []byte) (*Signature, error) {
	s.seen = append(s.seen, message)
	return s.sig, s.err
}

func TestSign(t *testing.T) {
	require := require.New(t)

	signer := &recordingSigner{sig: &Signature{PubKey: []byte{0x01, 0x02}, Signature: []byte{0xaa}}}
	m := newTransfer()

	signed, err := Sign(m, signer)
	require.NoError(err)

	want, err := m.Bytes()
	require.NoError(err)
	require.Equal(want, signed.Bytes)
	require.Equal([][]byte{want}, signer.seen)
	require.Same(m, signed.Message)
	require.Equal(signer.sig, signed.Signature)
}

func TestSign_EncodingErrorSkipsSigner(t *testing.T) {
	signer := &recordingSigner{sig: &Signature{}}
	m := newTransfer()
	m.From = "not an address"

	_, err := Sign(m, signer)
	require.ErrorIs(t, err, errs.ErrInvalidAddress)
	require.Empty(t, signer.seen)
}

func TestSign_SignerFailure(t *testing.T) {
	boom := errors.New("key unavailable")

	_, err := Sign(newTransfer(), &recordingSigner{err: boom})
	require.ErrorIs(t, err, boom)
	require.Contains(t, err.Error(), "sign Transfer")

	_, err = Sign(newTransfer(), &recordingSigner{})
	require.ErrorIs(t, err, errNilSignature)
}

func TestSignature_JSON(t *testing.T) {
	sig := &Signature{PubKey: []byte{0x01, 0x02}, Signature: []byte{0xab, 0xcd}}

	out, err := json.Marshal(sig)
	require.NoError(t, err)
	require.JSONEq(t, `{"pubKey":"0x0102","signature":"0xabcd"}`, string(out))

	var decoded Signature
	require.NoError(t, json.Unmarshal(out, &decoded))
	require.Equal(t, *sig, decoded)
}
