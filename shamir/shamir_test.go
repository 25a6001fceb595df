package shamir

import (
	"bytes"
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	mrand "math/rand/v2"
	"reflect"
	"testing"

	"github.com/de-centralized-systems/bip39toolkit/gf256"
)

// zeroReader hands out zero bytes forever.
type zeroReader struct{}

func (zeroReader) Read(p []byte) (int, error) {
	clear(p)
	return len(p), nil
}

func TestDealer(t *testing.T) {
	var d Dealer
	type args struct {
		t, n   int
		secret []byte
	}
	type test struct {
		name        string
		args        args
		wantErr     bool
		wantInvalid bool
	}
	tests := []test{
		{
			name: "empty secret",
			args: args{
				t:      3,
				n:      5,
				secret: nil,
			},
			wantErr: true,
		},
		{
			name: "secret too long",
			args: args{
				t:      3,
				n:      5,
				secret: make([]byte, 33),
			},
			wantErr: true,
		},
		{
			name: "invalid params",
			args: args{
				t:      0,
				n:      10,
				secret: []byte{0xde, 0xca, 0xfb, 0xad},
			},
			wantErr: true,
		},
		{
			name: "t==n",
			args: args{
				t:      7,
				n:      7,
				secret: []byte{0xde, 0xca, 0xfb, 0xad},
			},
		},
		{
			name: "t==1",
			args: args{
				t:      1,
				n:      3,
				secret: []byte{0xb1, 0x6b, 0x00, 0xb5},
			},
		},
	}

	mktest := func(prefix string) test {
		threshold := mrand.IntN(8) + 2
		n := threshold + mrand.IntN(20)

		// at least 8 bytes so a wrong recovery cannot collide with the
		// secret by chance
		secret := make([]byte, mrand.IntN(25)+8)
		_, err := rand.Read(secret)
		if err != nil {
			t.Fatal(err)
		}

		return test{
			name: fmt.Sprintf("%s-%d-%d-%d", prefix, len(secret), threshold, n),
			args: args{
				t:      threshold,
				n:      n,
				secret: secret,
			},
		}
	}

	// add some random valid tests
	for range 10 {
		tests = append(tests, mktest("valid"))
	}

	// add some random tests for invalid recovery (not enough shares)
	for range 10 {
		tt := mktest("invalid")
		tt.wantInvalid = true
		tests = append(tests, tt)
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			shares, err := d.Split(tt.args.t, tt.args.n, tt.args.secret)
			if (err != nil) != tt.wantErr {
				t.Fatalf("expected error %v, got %v", tt.wantErr, err)
			}
			if err != nil {
				return
			}

			mrand.Shuffle(len(shares), func(i, j int) {
				shares[i], shares[j] = shares[j], shares[i]
			})

			thresRecover := tt.args.t
			if tt.wantInvalid {
				thresRecover = mrand.IntN(tt.args.t-1) + 1
			}

			recovered, err := Recover(shares[:thresRecover])
			if err != nil {
				t.Fatal(err)
			}

			if bytes.Equal(recovered, tt.args.secret) != !tt.wantInvalid {
				t.Fatalf("%v==%v should be %t", tt.args.secret, recovered, !tt.wantInvalid)
			}
		})
	}
}

func TestSplitIndices(t *testing.T) {
	shares, err := Split(2, 5, []byte{0x01, 0x02})
	if err != nil {
		t.Fatal(err)
	}
	for i, share := range shares {
		if share.Index != i+1 {
			t.Errorf("share %d has index %d, want %d", i, share.Index, i+1)
		}
		if len(share.Value) != 2 {
			t.Errorf("share %d has %d value bytes, want 2", i, len(share.Value))
		}
	}
}

// With a threshold of 1 every polynomial is constant, so every share value
// is the secret itself and any single share recovers it.
func TestThresholdOne(t *testing.T) {
	secret := []byte{0x42, 0x99}
	shares, err := Split(1, 4, secret)
	if err != nil {
		t.Fatal(err)
	}
	for _, share := range shares {
		if !bytes.Equal(share.Value, secret) {
			t.Fatalf("share %d value = %x, want %x", share.Index, share.Value, secret)
		}
		recovered, err := Recover([]Share{share})
		if err != nil {
			t.Fatal(err)
		}
		if !bytes.Equal(recovered, secret) {
			t.Fatalf("recovered %x, want %x", recovered, secret)
		}
	}
}

func TestSplitDeterministic(t *testing.T) {
	secret := []byte{0xb1, 0x6b, 0x00, 0xb5, 0xde, 0xca, 0xfb, 0xad}

	a, err := SplitDeterministic(3, 5, secret, "alpha")
	if err != nil {
		t.Fatal(err)
	}
	b, err := SplitDeterministic(3, 5, secret, "alpha")
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(a, b) {
		t.Fatal("equal sessions must reproduce the share set")
	}

	c, err := SplitDeterministic(3, 5, secret, "beta")
	if err != nil {
		t.Fatal(err)
	}
	if reflect.DeepEqual(a, c) {
		t.Fatal("distinct sessions must not reproduce the share set")
	}

	empty, err := SplitDeterministic(3, 5, secret, "")
	if err != nil {
		t.Fatal(err)
	}
	if reflect.DeepEqual(a, empty) {
		t.Fatal("empty session must differ from a named session")
	}

	random, err := Split(3, 5, secret)
	if err != nil {
		t.Fatal(err)
	}
	if reflect.DeepEqual(random, empty) {
		t.Fatal("randomized shares must differ from deterministic ones")
	}
}

// A zeroed random source degrades randomized splitting to the
// deterministic derivation with an empty session, nothing weaker.
func TestSplitZeroRand(t *testing.T) {
	secret := []byte{0x13, 0x37, 0xc0, 0xde}
	d := Dealer{Rand: zeroReader{}}

	got, err := d.Split(2, 3, secret)
	if err != nil {
		t.Fatal(err)
	}
	want, err := SplitDeterministic(2, 3, secret, "")
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestSplitRunsIncompatible(t *testing.T) {
	secret := make([]byte, 16)
	if _, err := rand.Read(secret); err != nil {
		t.Fatal(err)
	}

	a, err := Split(3, 5, secret)
	if err != nil {
		t.Fatal(err)
	}
	b, err := Split(3, 5, secret)
	if err != nil {
		t.Fatal(err)
	}
	if reflect.DeepEqual(a, b) {
		t.Fatal("two randomized runs must not agree")
	}

	mixed := []Share{a[0], a[1], b[2]}
	recovered, err := Recover(mixed)
	if err != nil {
		t.Fatal(err)
	}
	if bytes.Equal(recovered, secret) {
		t.Fatal("mixed shares from independent runs must not recover the secret")
	}
}

func Test_split(t *testing.T) {
	type args struct {
		random    io.Reader
		threshold int
		n         int
		secret    []byte
		session   *string
	}
	tests := []struct {
		name    string
		args    args
		wantErr error
	}{
		{
			name: "threshold above n",
			args: args{
				random:    rand.Reader,
				threshold: 5,
				n:         3,
				secret:    []byte{0x42},
			},
			wantErr: ErrThreshold,
		},
		{
			name: "zero params",
			args: args{
				random:    rand.Reader,
				threshold: 0,
				n:         0,
				secret:    []byte{0xde, 0xca},
			},
			wantErr: ErrThreshold,
		},
		{
			name: "too many shares",
			args: args{
				random:    rand.Reader,
				threshold: 3,
				n:         256,
				secret:    []byte{0xde, 0xca},
			},
			wantErr: ErrShareCount,
		},
		{
			name: "empty secret",
			args: args{
				random:    rand.Reader,
				threshold: 3,
				n:         5,
				secret:    nil,
			},
			wantErr: ErrSecretLength,
		},
		{
			name: "secret too long",
			args: args{
				random:    rand.Reader,
				threshold: 3,
				n:         5,
				secret:    make([]byte, maxSecretLen+1),
			},
			wantErr: ErrSecretLength,
		},
		{
			name: "bad rand source",
			args: args{
				random:    bytes.NewReader([]byte("not enough entropy")),
				threshold: 5,
				n:         10,
				secret:    make([]byte, 16),
			},
			wantErr: io.ErrUnexpectedEOF,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := split(tt.args.random, tt.args.threshold, tt.args.n, tt.args.secret, tt.args.session)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected error %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func Test_recover(t *testing.T) {
	tests := []struct {
		name    string
		shares  []Share
		want    []byte
		wantErr bool
	}{
		{
			name:    "nil shares",
			shares:  nil,
			wantErr: true,
		},
		{
			name: "inconsistent lengths",
			shares: []Share{
				{Index: 1, Value: []byte{1, 2, 3}},
				{Index: 2, Value: []byte{1, 2}},
				{Index: 5, Value: []byte{5, 4, 3}},
			},
			wantErr: true,
		},
		{
			name: "duplicate index",
			shares: []Share{
				{Index: 1, Value: []byte{1, 2}},
				{Index: 1, Value: []byte{3, 4}},
			},
			wantErr: true,
		},
		{
			name: "index out of range",
			shares: []Share{
				{Index: 0, Value: []byte{1}},
			},
			wantErr: true,
		},
		{ // share values have been manually reviewed and verified
			name: "single share is the constant term",
			shares: []Share{
				{Index: 5, Value: []byte{0xab, 0x17}},
			},
			want: []byte{0xab, 0x17},
		},
		{ // evaluations of 0x53 + 0x02*x at x = 1, 2
			name: "linear polynomial",
			shares: []Share{
				{Index: 1, Value: []byte{0x51}},
				{Index: 2, Value: []byte{0x57}},
			},
			want: []byte{0x53},
		},
		{ // evaluations of 0x10 + x + x^2 at x = 1, 2, 3
			name: "quadratic polynomial",
			shares: []Share{
				{Index: 1, Value: []byte{0x10}},
				{Index: 2, Value: []byte{0x16}},
				{Index: 3, Value: []byte{0x16}},
			},
			want: []byte{0x10},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Recover(tt.shares)
			if (err != nil) != tt.wantErr {
				t.Errorf("Recover() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Recover() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRecoverSentinels(t *testing.T) {
	if _, err := Recover(nil); !errors.Is(err, ErrNoShares) {
		t.Errorf("expected %v, got %v", ErrNoShares, err)
	}

	shares := []Share{
		{Index: 1, Value: []byte{1, 2}},
		{Index: 2, Value: []byte{1}},
	}
	if _, err := Recover(shares); !errors.Is(err, ErrShareLength) {
		t.Errorf("expected %v, got %v", ErrShareLength, err)
	}

	shares = []Share{
		{Index: 7, Value: []byte{1}},
		{Index: 7, Value: []byte{2}},
	}
	if _, err := Recover(shares); !errors.Is(err, gf256.ErrNoInverse) {
		t.Errorf("expected %v, got %v", gf256.ErrNoInverse, err)
	}

	for _, index := range []int{-1, 0, 256} {
		shares = []Share{{Index: index, Value: []byte{1}}}
		if _, err := Recover(shares); !errors.Is(err, ErrShareIndex) {
			t.Errorf("index %d: expected %v, got %v", index, ErrShareIndex, err)
		}
	}
}

func Test_coefficients(t *testing.T) {
	secret := []byte{0xb1, 0x6b, 0x00, 0xb5}

	coeffs, err := coefficients(zeroReader{}, 4, secret, nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(coeffs) != 4 {
		t.Fatalf("expected 4 coefficients, got %d", len(coeffs))
	}
	if !bytes.Equal(coeffs[0], secret) {
		t.Fatalf("coefficient 0 = %x, want the secret %x", coeffs[0], secret)
	}
	for j, c := range coeffs {
		if len(c) != len(secret) {
			t.Fatalf("coefficient %d has %d bytes, want %d", j, len(c), len(secret))
		}
	}

	// coefficient 0 must be a copy, not an alias
	coeffs[0][0] ^= 0xff
	if secret[0] != 0xb1 {
		t.Fatal("coefficient 0 aliases the secret")
	}

	session := "alpha"
	a, err := coefficients(nil, 3, secret, &session)
	if err != nil {
		t.Fatal(err)
	}
	b, err := coefficients(nil, 3, secret, &session)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(a, b) {
		t.Fatal("deterministic coefficients must be reproducible")
	}
}
