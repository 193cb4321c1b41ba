package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Krox/math/factor"
	"github.com/Krox/math/modular"
	"github.com/Krox/math/multfunc"
	"github.com/Krox/math/primes"

	"github.com/spf13/cobra"
	"github.com/tuneinsight/lattigo/v4/ring"
)

var (
	cache = primes.New()
	fz    = factor.New(cache)

	verifyRing bool

	rootCmd = &cobra.Command{
		Use:           "mathcli",
		Short:         "Number theory toolbox for 64-bit integers",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	factorCmd = &cobra.Command{
		Use:   "factor <n>",
		Short: "Prime factorization of n",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := parseInt(args[0])
			if err != nil {
				return err
			}
			if n <= 0 {
				return fmt.Errorf("factor: n must be positive, got %d", n)
			}
			fmt.Printf("%d = %s\n", n, formatFactorization(fz.Factor(n)))
			return nil
		},
	}

	divisorsCmd = &cobra.Command{
		Use:   "divisors <n>",
		Short: "All positive divisors of n in ascending order",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := parseInt(args[0])
			if err != nil {
				return err
			}
			if n <= 0 {
				return fmt.Errorf("divisors: n must be positive, got %d", n)
			}
			ds := fz.Divisors(n)
			fmt.Println(joinInts(ds))
			fmt.Printf("%d divisors\n", len(ds))
			return nil
		},
	}

	primesCmd = &cobra.Command{
		Use:   "primes <n> | primes <a> <b>",
		Short: "Primes up to n, or inside [a, b]",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := parseInt(args[0])
			if err != nil {
				return err
			}
			var ps []int64
			if len(args) == 1 {
				ps = cache.UpTo(a)
			} else {
				b, err := parseInt(args[1])
				if err != nil {
					return err
				}
				ps = cache.Range(a, b)
			}
			fmt.Println(joinInts(ps))
			return nil
		},
	}

	piCmd = &cobra.Command{
		Use:   "pi <n>",
		Short: "Count primes up to n without enumerating them",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := parseInt(args[0])
			if err != nil {
				return err
			}
			fmt.Println(cache.Count(n))
			return nil
		},
	}

	nextprimeCmd = &cobra.Command{
		Use:   "nextprime <n>",
		Short: "Smallest prime strictly above n",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := parseInt(args[0])
			if err != nil {
				return err
			}
			fmt.Println(primes.NextPrime(n))
			return nil
		},
	}

	totientCmd = &cobra.Command{
		Use:   "totient <n>",
		Short: "Euler's phi of n",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := parseInt(args[0])
			if err != nil {
				return err
			}
			if n <= 0 {
				return fmt.Errorf("totient: n must be positive, got %d", n)
			}
			fmt.Println(multfunc.Totient(fz).Eval(n))
			return nil
		},
	}

	sqrtmodCmd = &cobra.Command{
		Use:   "sqrtmod <x> <p>",
		Short: "Square root of x modulo an odd prime p",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			x, err := parseInt(args[0])
			if err != nil {
				return err
			}
			p, err := parseInt(args[1])
			if err != nil {
				return err
			}
			if !primes.IsPrime(p) {
				return fmt.Errorf("sqrtmod: %d is not prime", p)
			}
			c := modular.Reduce(x, p)
			if p > 2 && c.Residue() != 0 && modular.Jacobi(c.Residue(), p) != 1 {
				return fmt.Errorf("sqrtmod: %d is not a square mod %d", x, p)
			}
			r := c.Sqrt()
			fmt.Printf("%v\n", r)
			if other := r.Neg(); other != r {
				fmt.Printf("%v\n", other)
			}
			return nil
		},
	}

	crtCmd = &cobra.Command{
		Use:   "crt <r1> <m1> <r2> <m2> [<r3> <m3> ...]",
		Short: "Combine congruences x = r_i (mod m_i)",
		Args:  cobra.MinimumNArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args)%2 != 0 {
				return fmt.Errorf("crt: arguments come in residue/modulus pairs")
			}
			acc, err := parseClass(args[0], args[1])
			if err != nil {
				return err
			}
			for i := 2; i < len(args); i += 2 {
				next, err := parseClass(args[i], args[i+1])
				if err != nil {
					return err
				}
				acc, err = acc.Combine(next)
				if err != nil {
					return err
				}
			}
			fmt.Printf("x = %v\n", acc)
			return nil
		},
	}

	nttprimesCmd = &cobra.Command{
		Use:   "nttprimes <bits> <degree> <count>",
		Short: "NTT-friendly primes just below 2^bits for a given ring degree",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			bits, err := parseInt(args[0])
			if err != nil {
				return err
			}
			degree, err := parseInt(args[1])
			if err != nil {
				return err
			}
			count, err := parseInt(args[2])
			if err != nil {
				return err
			}
			if bits < 2 || bits > 62 {
				return fmt.Errorf("nttprimes: bits must lie in [2, 62], got %d", bits)
			}
			if degree < 1 || count < 1 {
				return fmt.Errorf("nttprimes: degree and count must be positive")
			}
			ps := primes.NTTFriendly(uint(bits), int(degree), int(count))
			if int64(len(ps)) < count {
				return fmt.Errorf("nttprimes: only %d primes of %d bits exist for degree %d", len(ps), bits, degree)
			}
			fmt.Println(joinInts(ps))
			if verifyRing {
				moduli := make([]uint64, len(ps))
				for i, p := range ps {
					moduli[i] = uint64(p)
				}
				if _, err := ring.NewRing(int(degree), moduli); err != nil {
					return fmt.Errorf("nttprimes: ring rejects moduli: %w", err)
				}
				fmt.Println("verified: NTT ring constructed")
			}
			return nil
		},
	}
)

func init() {
	nttprimesCmd.Flags().BoolVar(&verifyRing, "verify", false, "construct an NTT ring over the generated moduli")
	rootCmd.AddCommand(factorCmd)
	rootCmd.AddCommand(divisorsCmd)
	rootCmd.AddCommand(primesCmd)
	rootCmd.AddCommand(piCmd)
	rootCmd.AddCommand(nextprimeCmd)
	rootCmd.AddCommand(totientCmd)
	rootCmd.AddCommand(sqrtmodCmd)
	rootCmd.AddCommand(crtCmd)
	rootCmd.AddCommand(nttprimesCmd)
}

func parseInt(s string) (int64, error) {
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("not a 64-bit integer: %q", s)
	}
	return n, nil
}

func parseClass(rs, ms string) (modular.Class, error) {
	r, err := parseInt(rs)
	if err != nil {
		return modular.Class{}, err
	}
	m, err := parseInt(ms)
	if err != nil {
		return modular.Class{}, err
	}
	if m <= 0 {
		return modular.Class{}, fmt.Errorf("crt: modulus must be positive, got %d", m)
	}
	return modular.Reduce(r, m), nil
}

func formatFactorization(fs []factor.PrimePower) string {
	if len(fs) == 0 {
		return "1"
	}
	parts := make([]string, len(fs))
	for i, pe := range fs {
		if pe.E == 1 {
			parts[i] = strconv.FormatInt(pe.P, 10)
		} else {
			parts[i] = fmt.Sprintf("%d^%d", pe.P, pe.E)
		}
	}
	return strings.Join(parts, " * ")
}

func joinInts(xs []int64) string {
	parts := make([]string, len(xs))
	for i, x := range xs {
		parts[i] = strconv.FormatInt(x, 10)
	}
	return strings.Join(parts, " ")
}
