// Command sha3sum prints SHA-3/SHAKE checksums of files or stdin.
//
// It is a thin demonstration front end over the sha3 package: this
// command, not the library, is the right place for file I/O, flag parsing
// and logging.
package main

import (
	"encoding/hex"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/sha3kit/keccaksponge/sha3"
)

var (
	verbose    bool
	shakeBits  int
	bitsOffset int
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "sha3sum",
		Short: "print SHA-3 and SHAKE checksums",
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log per-file diagnostics")

	root.AddCommand(
		fixedCmd("sha3-224", sha3.New224),
		fixedCmd("sha3-256", sha3.New256),
		fixedCmd("sha3-384", sha3.New384),
		fixedCmd("sha3-512", sha3.New512),
		shakeCmd("shake128", sha3.NewShake128),
		shakeCmd("shake256", sha3.NewShake256),
	)
	return root
}

func fixedCmd(name string, newHasher func() *sha3.Hasher) *cobra.Command {
	return &cobra.Command{
		Use:   name + " [files...]",
		Short: "print " + name + " checksums",
		RunE: func(cmd *cobra.Command, args []string) error {
			return eachInput(args, func(label string, r io.Reader) error {
				h := newHasher()
				if err := absorbReader(h, r); err != nil {
					return err
				}
				digest := make([]byte, h.Size())
				if err := h.Finalize(digest); err != nil {
					return err
				}
				printDigest(label, digest)
				return nil
			})
		},
	}
}

func shakeCmd(name string, newShake func() *sha3.ShakeHash) *cobra.Command {
	cmd := &cobra.Command{
		Use:   name + " [files...]",
		Short: "print " + name + " digests of the requested output length",
		RunE: func(cmd *cobra.Command, args []string) error {
			if shakeBits%8 != 0 {
				return errors.Errorf("--bits must be a multiple of 8, got %d", shakeBits)
			}
			return eachInput(args, func(label string, r io.Reader) error {
				h := newShake()
				if err := absorbShakeReader(h, r); err != nil {
					return err
				}
				if err := h.Finalize(); err != nil {
					return err
				}
				digest := make([]byte, shakeBits/8)
				if _, err := h.Read(digest); err != nil {
					return err
				}
				printDigest(label, digest)
				return nil
			})
		},
	}
	cmd.Flags().IntVar(&shakeBits, "bits", 256, "number of output bits to squeeze (must be a multiple of 8)")
	cmd.Flags().IntVar(&bitsOffset, "odd-bits", 0, "extra 0..7 bits to absorb via UpdateBits, exercising non-byte-aligned input")
	return cmd
}

func eachInput(args []string, run func(label string, r io.Reader) error) error {
	if len(args) == 0 {
		if verbose {
			logrus.Info("reading checksum input from stdin")
		}
		return run("-", os.Stdin)
	}
	for _, filename := range args {
		f, err := os.Open(filename)
		if err != nil {
			if verbose {
				logrus.WithError(err).WithField("file", filename).Error("failed to open input")
			}
			return err
		}
		if verbose {
			logrus.WithField("file", filename).Info("hashing")
		}
		err = run(filename, f)
		f.Close()
		if err != nil {
			return err
		}
	}
	return nil
}

func absorbReader(h *sha3.Hasher, r io.Reader) error {
	buf := make([]byte, 32*1024)
	for {
		n, err := r.Read(buf)
		if n > 0 {
			if uerr := h.Update(buf[:n]); uerr != nil {
				return uerr
			}
		}
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
	}
}

func absorbShakeReader(h *sha3.ShakeHash, r io.Reader) error {
	buf := make([]byte, 32*1024)
	for {
		n, err := r.Read(buf)
		if n > 0 {
			if uerr := h.Update(buf[:n]); uerr != nil {
				return uerr
			}
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}
	}
	if bitsOffset > 0 {
		extra := make(sha3.Bits, bitsOffset)
		return h.UpdateBits(extra)
	}
	return nil
}

func printDigest(label string, digest []byte) {
	if label == "-" {
		os.Stdout.WriteString(hex.EncodeToString(digest) + "\n")
		return
	}
	os.Stdout.WriteString(hex.EncodeToString(digest) + "  " + label + "\n")
}
