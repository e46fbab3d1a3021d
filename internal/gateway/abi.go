package gateway

import "math/big"

// eventoABI is the contract surface of the Evento ticketing contract. Ticket
// rows are a tuple array in contract storage order; the positional index is
// the ticket id within one snapshot.
const eventoABI = `[
	{"constant":true,"inputs":[],"name":"saleActive","outputs":[{"name":"","type":"bool"}],"stateMutability":"view","type":"function"},
	{"constant":true,"inputs":[],"name":"earlyBirdActive","outputs":[{"name":"","type":"bool"}],"stateMutability":"view","type":"function"},
	{"constant":true,"inputs":[],"name":"whitelistActive","outputs":[{"name":"","type":"bool"}],"stateMutability":"view","type":"function"},
	{"constant":true,"inputs":[],"name":"eventCancelled","outputs":[{"name":"","type":"bool"}],"stateMutability":"view","type":"function"},
	{"constant":false,"inputs":[{"name":"active","type":"bool"}],"name":"setSaleActive","outputs":[],"stateMutability":"nonpayable","type":"function"},
	{"constant":false,"inputs":[{"name":"active","type":"bool"}],"name":"setEarlyBirdActive","outputs":[],"stateMutability":"nonpayable","type":"function"},
	{"constant":false,"inputs":[{"name":"active","type":"bool"}],"name":"setWhitelistActive","outputs":[],"stateMutability":"nonpayable","type":"function"},
	{"constant":false,"inputs":[{"name":"cancelled","type":"bool"}],"name":"setEventCancelled","outputs":[],"stateMutability":"nonpayable","type":"function"},
	{"constant":true,"inputs":[],"name":"getTicketTypes","outputs":[{"components":[{"name":"name","type":"string"},{"name":"maxSupply","type":"uint256"},{"name":"currentSupply","type":"uint256"},{"name":"price","type":"uint256"},{"name":"earlyBirdPrice","type":"uint256"},{"name":"whitelistPrice","type":"uint256"},{"name":"active","type":"bool"}],"name":"","type":"tuple[]"}],"stateMutability":"view","type":"function"},
	{"constant":false,"inputs":[{"components":[{"name":"name","type":"string"},{"name":"maxSupply","type":"uint256"},{"name":"currentSupply","type":"uint256"},{"name":"price","type":"uint256"},{"name":"earlyBirdPrice","type":"uint256"},{"name":"whitelistPrice","type":"uint256"},{"name":"active","type":"bool"}],"name":"ticketTypes","type":"tuple[]"}],"name":"writeAllTicketTypes","outputs":[],"stateMutability":"nonpayable","type":"function"},
	{"constant":false,"inputs":[{"name":"code","type":"string"},{"name":"percentage","type":"uint256"}],"name":"addDiscountCode","outputs":[],"stateMutability":"nonpayable","type":"function"},
	{"constant":true,"inputs":[{"name":"account","type":"address"}],"name":"isWhitelisted","outputs":[{"name":"","type":"bool"}],"stateMutability":"view","type":"function"},
	{"constant":false,"inputs":[{"name":"account","type":"address"}],"name":"addToWhitelist","outputs":[],"stateMutability":"nonpayable","type":"function"},
	{"constant":false,"inputs":[{"name":"account","type":"address"}],"name":"removeFromWhitelist","outputs":[],"stateMutability":"nonpayable","type":"function"},
	{"constant":false,"inputs":[{"name":"ticketTypeId","type":"uint256"},{"name":"quantity","type":"uint256"},{"name":"discountCode","type":"string"}],"name":"purchaseTickets","outputs":[],"stateMutability":"payable","type":"function"}
]`

// ticketTypeRecord is the wire shape of one ticket row. Field order and
// names must match the ABI tuple components.
type ticketTypeRecord struct {
	Name           string   `abi:"name"`
	MaxSupply      *big.Int `abi:"maxSupply"`
	CurrentSupply  *big.Int `abi:"currentSupply"`
	Price          *big.Int `abi:"price"`
	EarlyBirdPrice *big.Int `abi:"earlyBirdPrice"`
	WhitelistPrice *big.Int `abi:"whitelistPrice"`
	Active         bool     `abi:"active"`
}
