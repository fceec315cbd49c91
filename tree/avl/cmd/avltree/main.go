package main

import (
	"fmt"
	"log"
	"time"

	"github.com/spf13/cobra"
	"go.lepak.sg/trees/tree/avl"
	"go.lepak.sg/trees/tree/binary"
	"go.lepak.sg/trees/tree/iterator"
)

// shape is what the random command needs from either kind of tree.
type shape interface {
	Len() int
	PreOrder(f func(k, v int) bool)
	Height() (actual, ideal int)
	EqualPaths() bool
	String() string
	InOrderCoroutine() iterator.Coroutine[int, int]
}

func main() {
	cmdRandom := &cobra.Command{
		Use:   "random",
		Short: "Build a tree from randomly ordered keys and print it",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			flags := cmd.Flags()
			num, _ := flags.GetInt("num")
			seed, _ := flags.GetInt64("seed")
			plain, _ := flags.GetBool("plain")

			if seed == 0 {
				seed = time.Now().UnixNano()
			}

			printRandom(num, seed, plain)
		},
	}
	cmdRandom.Flags().IntP("num", "n", 10, "number of nodes in the tree")
	cmdRandom.Flags().Int64P("seed", "s", 0, "seed (default current unix time in ns)")
	cmdRandom.Flags().Bool("plain", false, "build a plain binary search tree instead of an AVL tree")

	cmdStress := &cobra.Command{
		Use:   "stress",
		Short: "Insert and remove random keys, checking the AVL invariants after every step",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			cfg, err := loadConfig(cmd.Flags())
			if err != nil {
				log.Fatalf("Error loading config: %v", err)
			}

			if err := stress(cmd.Context(), cfg); err != nil {
				log.Fatalf("Stress failed: %v", err)
			}
			fmt.Printf("%d rounds of %d keys passed\n", cfg.Rounds, cfg.Size)
		},
	}
	addConfigFlags(cmdStress.Flags())

	rootCmd := &cobra.Command{
		Use:   "avltree",
		Short: "Play with AVL trees",
	}
	rootCmd.AddCommand(cmdRandom, cmdStress)

	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}

func printRandom(num int, seed int64, plain bool) {
	var tr shape
	if plain {
		tr = binary.BuildRandom(num, seed)
	} else {
		tr = avl.BuildRandom(num, seed)
	}

	preorder := make([]int, 0, num)
	tr.PreOrder(func(k, _ int) bool {
		preorder = append(preorder, k)
		return true
	})

	inorder := make([]int, 0, num)
	for e := range tr.InOrderCoroutine().Entries() {
		inorder = append(inorder, e.Key)
	}

	fmt.Println("seed:", seed)
	fmt.Println("preorder:", preorder)
	fmt.Println("inorder:", inorder)

	fmt.Println("tree:")
	fmt.Println(tr.String())

	actual, ideal := tr.Height()
	fmt.Println("height:", actual, "ideal:", ideal)
	fmt.Println("equal paths:", tr.EqualPaths())
}
