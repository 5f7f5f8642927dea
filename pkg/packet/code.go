package packet

import "fmt"

// Code is the packet type carried in the first header byte. The decoder
// accepts every value; the names and classes below are informational.
type Code uint8

// Codes from RFC 2865, RFC 2866 (accounting) and RFC 5176 (dynamic
// authorization).
const (
	CodeAccessRequest      Code = 1
	CodeAccessAccept       Code = 2
	CodeAccessReject       Code = 3
	CodeAccountingRequest  Code = 4
	CodeAccountingResponse Code = 5
	CodeAccessChallenge    Code = 11
	CodeStatusServer       Code = 12
	CodeStatusClient       Code = 13
	CodeDisconnectRequest  Code = 40
	CodeDisconnectACK      Code = 41
	CodeDisconnectNAK      Code = 42
	CodeCoARequest         Code = 43
	CodeCoAAck             Code = 44
	CodeCoANak             Code = 45
	CodeReserved           Code = 255
)

type codeClass uint8

const (
	classNone codeClass = iota
	classRequest
	classResponse
)

type codeInfo struct {
	name  string
	class codeClass
}

var codeTable = map[Code]codeInfo{
	CodeAccessRequest:      {"Access-Request", classRequest},
	CodeAccessAccept:       {"Access-Accept", classResponse},
	CodeAccessReject:       {"Access-Reject", classResponse},
	CodeAccountingRequest:  {"Accounting-Request", classRequest},
	CodeAccountingResponse: {"Accounting-Response", classResponse},
	CodeAccessChallenge:    {"Access-Challenge", classResponse},
	CodeStatusServer:       {"Status-Server", classRequest},
	CodeStatusClient:       {"Status-Client", classResponse},
	CodeDisconnectRequest:  {"Disconnect-Request", classRequest},
	CodeDisconnectACK:      {"Disconnect-ACK", classResponse},
	CodeDisconnectNAK:      {"Disconnect-NAK", classResponse},
	CodeCoARequest:         {"CoA-Request", classRequest},
	CodeCoAAck:             {"CoA-ACK", classResponse},
	CodeCoANak:             {"CoA-NAK", classResponse},
}

// String returns the RFC name of the code, "Reserved" for 255 and
// "Unknown(n)" for anything unassigned.
func (c Code) String() string {
	if info, ok := codeTable[c]; ok {
		return info.name
	}
	if c == CodeReserved {
		return "Reserved"
	}
	return fmt.Sprintf("Unknown(%d)", uint8(c))
}

// IsDefined reports whether the code has an assigned meaning
func (c Code) IsDefined() bool {
	_, ok := codeTable[c]
	return ok
}

// IsRequest reports whether packets with this code are sent by a client
func (c Code) IsRequest() bool {
	return codeTable[c].class == classRequest
}

// IsResponse reports whether packets with this code answer a request
func (c Code) IsResponse() bool {
	return codeTable[c].class == classResponse
}
