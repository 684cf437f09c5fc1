// Copyright 2024 Blink Labs Software
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package config

import (
	"slices"

	"github.com/blinklabs-io/bignum/pow"
)

type Profile struct {
	Network      string // Network name
	GenesisHash  string // Hash of the first header, in display order
	PowLimitBits uint32 // Easiest target accepted, compact form
}

// GetProfile returns the profile for the configured network
func GetProfile() (Profile, bool) {
	profile, ok := Profiles[globalConfig.Validator.Network]
	return profile, ok
}

func GetAvailableProfiles() []string {
	ret := make([]string, 0, len(Profiles))
	for k := range Profiles {
		ret = append(ret, k)
	}
	slices.Sort(ret)
	return ret
}

func profileFromNetwork(network pow.Network) Profile {
	return Profile{
		Network:      network.Name,
		GenesisHash:  network.GenesisHash,
		PowLimitBits: network.PowLimitBits,
	}
}

var Profiles = map[string]Profile{
	pow.NetworkMainnet.Name:  profileFromNetwork(pow.NetworkMainnet),
	pow.NetworkTestnet3.Name: profileFromNetwork(pow.NetworkTestnet3),
	pow.NetworkRegtest.Name:  profileFromNetwork(pow.NetworkRegtest),
}
