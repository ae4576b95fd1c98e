package tx

import (
	"fmt"
	"math"
	"math/big"

	"github.com/holiman/uint256"

	"github.com/arloliu/zkwire/errs"
	"github.com/arloliu/zkwire/field"
	"github.com/arloliu/zkwire/format"
	"github.com/arloliu/zkwire/internal/pool"
	"github.com/arloliu/zkwire/packed"
)

// Message is a transaction that can be rendered into its signing bytes.
type Message interface {
	Type() format.TxType
	Bytes() ([]byte, error)
}

// TimeRange bounds the unix time (seconds) during which a transaction is valid.
type TimeRange struct {
	ValidFrom  uint64
	ValidUntil uint64
}

// DefaultTimeRange returns the unbounded range.
func DefaultTimeRange() TimeRange {
	return TimeRange{ValidFrom: 0, ValidUntil: math.MaxUint64}
}

// Transfer moves funds between two layer-2 accounts.
type Transfer struct {
	AccountID uint32
	From      string
	To        string
	Token     uint32
	Amount    *uint256.Int
	Fee       *uint256.Int
	Nonce     uint32
	TimeRange
}

// Withdraw moves funds to an Ethereum address. The amount is not packed.
type Withdraw struct {
	AccountID  uint32
	From       string
	EthAddress string
	Token      uint32
	Amount     *uint256.Int
	Fee        *uint256.Int
	Nonce      uint32
	TimeRange
}

// ChangePubKey binds a new signing key hash ("sync:" address) to an account.
type ChangePubKey struct {
	AccountID uint32
	Account   string
	NewPkHash string
	FeeToken  uint32
	Fee       *uint256.Int
	Nonce     uint32
	TimeRange
}

// ForcedExit withdraws all of Target's Token balance to its layer-1 address.
type ForcedExit struct {
	InitiatorAccountID uint32
	Target             string
	Token              uint32
	Fee                *uint256.Int
	Nonce              uint32
	TimeRange
}

var (
	_ Message = (*Transfer)(nil)
	_ Message = (*Withdraw)(nil)
	_ Message = (*ChangePubKey)(nil)
	_ Message = (*ForcedExit)(nil)
)

func (t *Transfer) Type() format.TxType { return format.TxTransfer }

// Bytes returns the signing bytes of the transfer.
func (t *Transfer) Bytes() ([]byte, error) {
	w := newWriter(t.Type())
	w.accountID("account id", t.AccountID)
	w.address("from", t.From)
	w.address("to", t.To)
	w.token("token", t.Token)
	w.packedAmount("amount", t.Amount)
	w.packedFee("fee", t.Fee)
	w.nonce(t.Nonce)
	w.timeRange(t.TimeRange)

	return w.finish()
}

func (w *Withdraw) Type() format.TxType { return format.TxWithdraw }

// Bytes returns the signing bytes of the withdrawal.
func (w *Withdraw) Bytes() ([]byte, error) {
	mw := newWriter(w.Type())
	mw.accountID("account id", w.AccountID)
	mw.address("from", w.From)
	mw.address("eth address", w.EthAddress)
	mw.token("token", w.Token)
	mw.fullAmount("amount", w.Amount)
	mw.packedFee("fee", w.Fee)
	mw.nonce(w.Nonce)
	mw.timeRange(w.TimeRange)

	return mw.finish()
}

func (c *ChangePubKey) Type() format.TxType { return format.TxChangePubKey }

// Bytes returns the signing bytes of the key change.
func (c *ChangePubKey) Bytes() ([]byte, error) {
	w := newWriter(c.Type())
	w.accountID("account id", c.AccountID)
	w.address("account", c.Account)
	w.pubKeyHash("new pubkey hash", c.NewPkHash)
	w.token("fee token", c.FeeToken)
	w.packedFee("fee", c.Fee)
	w.nonce(c.Nonce)
	w.timeRange(c.TimeRange)

	return w.finish()
}

func (f *ForcedExit) Type() format.TxType { return format.TxForcedExit }

// Bytes returns the signing bytes of the forced exit.
func (f *ForcedExit) Bytes() ([]byte, error) {
	w := newWriter(f.Type())
	w.accountID("initiator account id", f.InitiatorAccountID)
	w.address("target", f.Target)
	w.token("token", f.Token)
	w.packedFee("fee", f.Fee)
	w.nonce(f.Nonce)
	w.timeRange(f.TimeRange)

	return w.finish()
}

// writer appends fields to a pooled buffer and keeps the first error.
type writer struct {
	typ format.TxType
	buf *pool.ByteBuffer
	err error
}

func newWriter(typ format.TxType) *writer {
	w := &writer{typ: typ, buf: pool.GetMessageBuffer()}
	_ = w.buf.WriteByte(byte(typ))

	return w
}

func (w *writer) write(name string, b []byte, err error) {
	if w.err != nil {
		return
	}

	if err != nil {
		w.err = fmt.Errorf("%s %s: %w", w.typ, name, err)
		return
	}

	w.buf.MustWrite(b)
}

func (w *writer) accountID(name string, id uint32) {
	b, err := field.AccountIDToBytes(id)
	w.write(name, b, err)
}

func (w *writer) token(name string, id uint32) {
	b, err := field.TokenIDToBytes(id)
	w.write(name, b, err)
}

func (w *writer) address(name, address string) {
	b, err := field.AddressToBytes(address)
	w.write(name, b, err)
}

// pubKeyHash accepts only the "sync:" form.
func (w *writer) pubKeyHash(name, hash string) {
	if kind, _ := field.ClassifyAddress(hash); kind != format.AddressPubKeyHash {
		w.write(name, nil, fmt.Errorf("%w: %q is not a %q public key hash", errs.ErrInvalidAddress, hash, format.PubKeyHashPrefix))
		return
	}

	w.address(name, hash)
}

func (w *writer) packedAmount(name string, amount *uint256.Int) {
	b, err := packed.PackAmountChecked(toBig(amount))
	w.write(name, b, err)
}

func (w *writer) packedFee(name string, fee *uint256.Int) {
	b, err := packed.PackFeeChecked(toBig(fee))
	w.write(name, b, err)
}

func (w *writer) fullAmount(name string, amount *uint256.Int) {
	b, err := field.FullAmountU256ToBytes(amount)
	w.write(name, b, err)
}

func (w *writer) nonce(n uint32) {
	w.write("nonce", field.NonceToBytes(n), nil)
}

func (w *writer) timeRange(tr TimeRange) {
	if tr.ValidFrom > tr.ValidUntil {
		w.write("time range", nil, fmt.Errorf("%w: valid from %d is after valid until %d",
			errs.ErrInvalidTimeRange, tr.ValidFrom, tr.ValidUntil))

		return
	}

	w.write("valid from", field.TimestampToBytes(tr.ValidFrom), nil)
	w.write("valid until", field.TimestampToBytes(tr.ValidUntil), nil)
}

// finish returns a copy of the message and recycles the buffer.
func (w *writer) finish() ([]byte, error) {
	defer pool.PutMessageBuffer(w.buf)

	if w.err != nil {
		return nil, w.err
	}

	return w.buf.Clone(), nil
}

func toBig(v *uint256.Int) *big.Int {
	if v == nil {
		return new(big.Int)
	}

	return v.ToBig()
}
