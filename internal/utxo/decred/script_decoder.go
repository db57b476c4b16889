package decred

import (
	"encoding/hex"
	"strings"

	"github.com/btcsuite/btcd/btcutil/base58"
	"github.com/btcsuite/btcd/txscript"
	"github.com/decred/dcrd/crypto/blake256"
	"github.com/goodnatureofminers/blockinsight7000-decred/internal/utxo/model"
)

// Script types reported for outputs.
const (
	ScriptTypeNonStandard    = "nonstandard"
	ScriptTypePubKey         = "pubkey"
	ScriptTypePubKeyHash     = "pubkeyhash"
	ScriptTypeScriptHash     = "scripthash"
	ScriptTypeNullData       = "nulldata"
	ScriptTypeSStxCommitment = "sstxcommitment"
	ScriptTypeTreasuryAdd    = "treasuryadd"
)

// Opcodes that differ from the bitcoin opcode table.
const (
	opSStx       = 0xba
	opSSGen      = 0xbb
	opSSRtx      = 0xbc
	opSStxChange = 0xbd
	opTAdd       = 0xc1
	opTGen       = 0xc3
)

const hash160Size = 20

// stakeTags maps a stake opcode to the prefix of the tagged script type.
var stakeTags = map[byte]string{
	opSStx:       "stakesubmission",
	opSSGen:      "stakegen",
	opSSRtx:      "stakerevoke",
	opSStxChange: "stakechange",
	opTGen:       "treasurygen",
}

// opcodeNames renames opcodes whose meaning differs from the bitcoin table used for disassembly.
var opcodeNames = map[string]string{
	"OP_SHA256":      "OP_BLAKE256",
	"OP_CHECKSIGADD": "OP_SSTX",
	"OP_UNKNOWN187":  "OP_SSGEN",
	"OP_UNKNOWN188":  "OP_SSRTX",
	"OP_UNKNOWN189":  "OP_SSTXCHANGE",
	"OP_UNKNOWN190":  "OP_CHECKSIGALT",
	"OP_UNKNOWN191":  "OP_CHECKSIGALTVERIFY",
	"OP_UNKNOWN192":  "OP_SHA256",
	"OP_UNKNOWN193":  "OP_TADD",
	"OP_UNKNOWN194":  "OP_TSPEND",
	"OP_UNKNOWN195":  "OP_TGEN",
}

// OutputScript is the storage view of an output script.
type OutputScript struct {
	Type      string
	Hex       string
	Asm       string
	Addresses []string
}

// netParams holds the two byte address prefixes of a network.
type netParams struct {
	pubKeyHashAddrID [2]byte
	scriptHashAddrID [2]byte
}

type scriptDecoder struct {
	params netParams
}

// NewScriptDecoder initializes a decoder producing addresses for the provided network.
func NewScriptDecoder(network model.Network) (ScriptDecoder, error) {
	params, err := paramsForNetwork(network)
	if err != nil {
		return nil, err
	}
	return &scriptDecoder{params: params}, nil
}

func paramsForNetwork(network model.Network) (netParams, error) {
	parsed, err := model.ParseNetwork(string(network))
	if err != nil {
		return netParams{}, err
	}
	switch parsed {
	case model.Testnet:
		return netParams{pubKeyHashAddrID: [2]byte{0x0f, 0x21}, scriptHashAddrID: [2]byte{0x0e, 0xfc}}, nil
	case model.Simnet:
		return netParams{pubKeyHashAddrID: [2]byte{0x0e, 0x91}, scriptHashAddrID: [2]byte{0x0e, 0x6c}}, nil
	default:
		return netParams{pubKeyHashAddrID: [2]byte{0x07, 0x3f}, scriptHashAddrID: [2]byte{0x07, 0x1a}}, nil
	}
}

// DecodeOutput classifies a script and extracts its addresses. Unknown shapes and non-zero
// script versions are reported as nonstandard without addresses.
func (d *scriptDecoder) DecodeOutput(version uint16, script []byte) OutputScript {
	out := OutputScript{
		Type: ScriptTypeNonStandard,
		Hex:  hex.EncodeToString(script),
		Asm:  d.Disasm(script),
	}
	if version != 0 {
		return out
	}

	switch {
	case len(script) == 1 && script[0] == opTAdd:
		out.Type = ScriptTypeTreasuryAdd
		return out
	case len(script) > 0 && script[0] == txscript.OP_RETURN:
		d.decodeNullData(script, &out)
		return out
	}

	body, prefix := script, ""
	if len(script) > 0 {
		if tag, ok := stakeTags[script[0]]; ok {
			body, prefix = script[1:], tag+"-"
		}
	}

	if hash := extractPubKeyHash(body); hash != nil {
		out.Type = prefix + ScriptTypePubKeyHash
		out.Addresses = []string{d.encodeAddress(d.params.pubKeyHashAddrID, hash)}
		return out
	}
	if hash := extractScriptHash(body); hash != nil {
		out.Type = prefix + ScriptTypeScriptHash
		out.Addresses = []string{d.encodeAddress(d.params.scriptHashAddrID, hash)}
		return out
	}
	if prefix == "" && isPubKey(body) {
		out.Type = ScriptTypePubKey
	}
	return out
}

// decodeNullData recognizes ticket commitments: OP_RETURN, a 30 byte push of the hash160 of
// the reward address and an 8 byte amount whose top bit marks a script hash.
func (d *scriptDecoder) decodeNullData(script []byte, out *OutputScript) {
	out.Type = ScriptTypeNullData
	if len(script) != 32 || script[1] != 0x1e {
		return
	}
	out.Type = ScriptTypeSStxCommitment
	addrID := d.params.pubKeyHashAddrID
	if script[29]&0x80 != 0 {
		addrID = d.params.scriptHashAddrID
	}
	out.Addresses = []string{d.encodeAddress(addrID, script[2:2+hash160Size])}
}

// Disasm renders a script in the one-line assembly form. Scripts that fail to parse are
// rendered up to the failure followed by "[error]".
func (d *scriptDecoder) Disasm(script []byte) string {
	asm, _ := txscript.DisasmString(script)
	if asm == "" {
		return asm
	}
	tokens := strings.Split(asm, " ")
	for i, token := range tokens {
		if renamed, ok := opcodeNames[token]; ok {
			tokens[i] = renamed
		}
	}
	return strings.Join(tokens, " ")
}

// encodeAddress returns base58(netID || hash || checksum) where the checksum is the first
// four bytes of the double BLAKE-256 of netID || hash.
func (d *scriptDecoder) encodeAddress(netID [2]byte, hash []byte) string {
	payload := make([]byte, 0, len(netID)+len(hash)+4)
	payload = append(payload, netID[:]...)
	payload = append(payload, hash...)

	checksum := blakeSum(blakeSum(payload))
	payload = append(payload, checksum[:4]...)
	return base58.Encode(payload)
}

func blakeSum(b []byte) []byte {
	h := blake256.New()
	_, _ = h.Write(b)
	return h.Sum(nil)
}

func extractPubKeyHash(script []byte) []byte {
	if len(script) == 25 &&
		script[0] == txscript.OP_DUP &&
		script[1] == txscript.OP_HASH160 &&
		script[2] == txscript.OP_DATA_20 &&
		script[23] == txscript.OP_EQUALVERIFY &&
		script[24] == txscript.OP_CHECKSIG {
		return script[3:23]
	}
	return nil
}

func extractScriptHash(script []byte) []byte {
	if len(script) == 23 &&
		script[0] == txscript.OP_HASH160 &&
		script[1] == txscript.OP_DATA_20 &&
		script[22] == txscript.OP_EQUAL {
		return script[2:22]
	}
	return nil
}

func isPubKey(script []byte) bool {
	switch len(script) {
	case 35:
		return script[0] == txscript.OP_DATA_33 && script[34] == txscript.OP_CHECKSIG &&
			(script[1] == 0x02 || script[1] == 0x03)
	case 67:
		return script[0] == txscript.OP_DATA_65 && script[66] == txscript.OP_CHECKSIG && script[1] == 0x04
	default:
		return false
	}
}
