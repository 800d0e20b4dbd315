package steamid

import (
	"encoding/json"
	"errors"
	"strconv"
	"strings"

	"github.com/rotisserie/eris"
)

type Universe uint
type Type uint
type Instance uint

//goland:noinspection GoUnusedConst
const (
	UniverseInvalid Universe = iota
	UniversePublic
	UniverseBeta
	UniverseInternal
	UniverseDev
)

//goland:noinspection GoUnusedConst
const (
	TypeInvalid Type = iota
	TypeIndividual
	TypeMultiseat
	TypeGameServer
	TypeAnonGameServer
	TypePending
	TypeContentServer
	TypeClan
	TypeChat
	TypeP2pSuperSeeder
	TypeAnonUser
)

//goland:noinspection GoUnusedConst
const (
	InstanceAll Instance = iota
	InstanceDesktop
	InstanceConsole
	InstanceWeb
)

const (
	AccountIDMask       uint64 = 0xFFFFFFFF
	AccountInstanceMask uint64 = 0x000FFFFF
	AccountTypeMask     uint64 = 0xF
)

var (
	ErrorEmpty = errors.New("can't parse empty string as SteamID64")
)

// SteamID is a 64-bit Steam account identifier split into its universe, type,
// instance and account id parts.
type SteamID struct {
	id        uint64
	universe  Universe
	idType    Type
	instance  Instance
	accountID uint32
}

// New splits a raw SteamID64 into its parts.
func New(id uint64) SteamID {
	return SteamID{
		id:        id,
		accountID: uint32(id & AccountIDMask),
		instance:  Instance((id >> 32) & AccountInstanceMask),
		idType:    Type((id >> 52) & AccountTypeMask),
		universe:  Universe(id >> 56),
	}
}

// FromAccountID builds the public individual SteamID of a 32-bit account id,
// as used by the accountid fields of trade offers.
func FromAccountID(accountID uint32) SteamID {
	return New(uint64(UniversePublic)<<56 | uint64(TypeIndividual)<<52 | uint64(InstanceDesktop)<<32 | uint64(accountID))
}

func ParseSteamID64(s string) (SteamID, error) {
	if s == "" {
		return SteamID{}, ErrorEmpty
	}

	parsedID, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return SteamID{}, eris.Wrapf(err, "can't parse %q into a SteamID64", s)
	}

	return New(parsedID), nil
}

func (id SteamID) String() string {
	return strconv.FormatUint(id.id, 10)
}

func (id SteamID) Uint64() uint64 {
	return id.id
}

func (id SteamID) IsZero() bool {
	return id.id == 0
}

func (id SteamID) IsValid() bool {
	switch {
	case id.idType <= TypeInvalid || id.idType > TypeAnonUser:
		return false
	case id.universe <= UniverseInvalid || id.universe > UniverseDev:
		return false
	case id.idType == TypeIndividual && (id.accountID == 0 || id.instance > InstanceWeb):
		return false
	case id.idType == TypeClan && (id.accountID == 0 || id.instance != InstanceAll):
		return false
	case id.idType == TypeGameServer && id.accountID == 0:
		return false
	}

	return true
}

func (id SteamID) IsValidIndividual() bool {
	return id.universe == UniversePublic &&
		id.idType == TypeIndividual &&
		id.instance == InstanceDesktop &&
		id.accountID != 0
}

func (id SteamID) AccountId() uint32 {
	return id.accountID
}

// MarshalJSON writes the id as a quoted decimal string, the way the Web API
// returns it.
func (id SteamID) MarshalJSON() ([]byte, error) {
	return json.Marshal(id.String())
}

// UnmarshalJSON accepts both quoted and bare SteamID64 values.
func (id *SteamID) UnmarshalJSON(data []byte) error {
	raw := strings.Trim(string(data), `"`)
	if raw == "" || raw == "null" {
		*id = SteamID{}
		return nil
	}

	parsed, err := ParseSteamID64(raw)
	if err != nil {
		return err
	}

	*id = parsed
	return nil
}

// Collection is a list of SteamIDs sent as one comma separated parameter.
type Collection []SteamID

func (c Collection) String() string {
	parts := make([]string, len(c))
	for i, id := range c {
		parts[i] = id.String()
	}
	return strings.Join(parts, ",")
}
