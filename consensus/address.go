// Copyright 2018 The Gringo Developers. All rights reserved.
// Use of this source code is governed by a GNU GENERAL PUBLIC LICENSE v3
// license that can be found in the LICENSE file.

package consensus

import "fmt"

// AccountAddressAsString encodes addr as a base58 string tagged with
// this parameter set's network prefix.
func (p *ParameterSet) AccountAddressAsString(addr AccountPublicAddress) string {
	return p.addressCodec.Encode(p.publicAddressBase58Prefix, addr.SpendPublicKey, addr.ViewPublicKey)
}

// ParseAccountAddressString decodes a base58 address string, rejecting
// addresses whose network prefix does not match this parameter set's.
func (p *ParameterSet) ParseAccountAddressString(s string) (AccountPublicAddress, error) {
	prefix, spend, view, err := p.addressCodec.Decode(s)
	if err != nil {
		return AccountPublicAddress{}, err
	}

	if prefix != p.publicAddressBase58Prefix {
		return AccountPublicAddress{}, fmt.Errorf("%w: got %d, want %d", ErrAddressPrefixMismatch, prefix, p.publicAddressBase58Prefix)
	}

	return AccountPublicAddress{SpendPublicKey: spend, ViewPublicKey: view}, nil
}
