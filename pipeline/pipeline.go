// Copyright (C) 2026 Kestrel Games, Inc.
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <http://www.gnu.org/licenses/>.

// Package pipeline implements the compress/decompress façade that
// glues the msgpack codec and the lzw codec into the single entry
// point a caller actually wants: hand it a Value, get back bytes sized
// for host storage; hand it bytes, get back the Value.
package pipeline

import (
	"errors"
	"math"

	"github.com/kestrelgames/playerdata/lzw"
	"github.com/kestrelgames/playerdata/msgpack"
)

// DefaultSoftCap is the MessagePack-encoded size above which Compress
// gives up on LZW and stores the value uncompressed, to keep worst-case
// work bounded within a single frame budget.
const DefaultSoftCap = 4090

// ErrInvalidArgument reports a negative soft cap. A zero soft cap
// selects DefaultSoftCap.
var ErrInvalidArgument = errors.New("pipeline: invalid argument")

// Result is what Compress returns: the bytes to hand to host storage,
// plus the bookkeeping a caller typically wants to log or expose.
type Result struct {
	Bytes          []byte
	RawSize        int
	CompressedSize int
	Ratio          float64
}

// Options configures a Compress call. The zero value uses
// DefaultSoftCap and msgpack.DefaultConfig().
type Options struct {
	SoftCap int
	Config  msgpack.Config
}

func (o Options) resolve() (Options, error) {
	if o.SoftCap < 0 {
		return o, ErrInvalidArgument
	}
	if o.SoftCap == 0 {
		o.SoftCap = DefaultSoftCap
	}
	if o.Config == (msgpack.Config{}) {
		o.Config = msgpack.DefaultConfig()
	}
	return o, nil
}

// Compress encodes value as MessagePack, then LZW-compresses that
// encoding under order, unless the MessagePack size exceeds the
// configured soft cap, in which case the uncompressed MessagePack
// bytes are returned with a ratio of 1.000.
func Compress(value msgpack.Value, order lzw.Order, opts Options) (Result, error) {
	opts, err := opts.resolve()
	if err != nil {
		return Result{}, err
	}
	encoded, err := msgpack.Encode(value, opts.Config)
	if err != nil {
		return Result{}, err
	}
	rawSize := len(encoded)

	if rawSize > opts.SoftCap {
		return Result{
			Bytes:          encoded,
			RawSize:        rawSize,
			CompressedSize: rawSize,
			Ratio:          1.0,
		}, nil
	}

	framed, err := lzw.EncodeFramed(encoded, order)
	if err != nil {
		return Result{}, err
	}
	return Result{
		Bytes:          framed,
		RawSize:        rawSize,
		CompressedSize: len(framed),
		Ratio:          ratio(len(framed), rawSize),
	}, nil
}

// ratio computes compressedSize/rawSize, truncated (not rounded) to 3
// decimal places.
func ratio(compressedSize, rawSize int) float64 {
	if rawSize == 0 {
		return 1.0
	}
	r := float64(compressedSize) / float64(rawSize)
	return math.Floor(r*1000) / 1000
}

// Decompress reverses Compress. If data carries the lzw framing
// header it is LZW-decoded first; otherwise data is assumed to already
// be a plain MessagePack encoding (the soft-cap fallback path).
func Decompress(data []byte, cfg msgpack.Config) (msgpack.Value, error) {
	if cfg == (msgpack.Config{}) {
		cfg = msgpack.DefaultConfig()
	}
	mp, framed, err := lzw.DecodeFramed(data)
	if err != nil {
		return nil, err
	}
	if !framed {
		mp = data
	}
	return msgpack.Decode(mp, cfg)
}
