// Copyright 2025 Blink Labs Software
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package pow

type Network struct {
	Name         string
	Magic        uint32
	GenesisHash  string
	PowLimitBits uint32
}

var NetworkMainnet = Network{
	Name:         "mainnet",
	Magic:        0xd9b4bef9,
	GenesisHash:  "000000000019d6689c085ae165831e934ff763ae46a2a6c172b3f1b60a8ce26f",
	PowLimitBits: MaxTargetBits,
}

var NetworkTestnet3 = Network{
	Name:         "testnet3",
	Magic:        0x0709110b,
	GenesisHash:  "000000000933ea01ad0ee984209779baaec3ced90fa3f408719526f8d77f4943",
	PowLimitBits: MaxTargetBits,
}

var NetworkRegtest = Network{
	Name:        "regtest",
	Magic:       0xdab5bffa,
	GenesisHash: "0f9188f13cb7b2c71f2a335e3a4fc328bf5beb436012afca590b1a11466e2206",
	// Regtest allows nearly any hash
	PowLimitBits: 0x207fffff,
}

var networks = []Network{
	NetworkMainnet,
	NetworkTestnet3,
	NetworkRegtest,
}

// NetworkByName returns the network with the given name
func NetworkByName(name string) (Network, bool) {
	for _, network := range networks {
		if network.Name == name {
			return network, true
		}
	}
	return Network{}, false
}

// NetworkNames returns the names of all known networks
func NetworkNames() []string {
	ret := make([]string, 0, len(networks))
	for _, network := range networks {
		ret = append(ret, network.Name)
	}
	return ret
}
