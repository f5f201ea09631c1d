package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"speedcheck/internal/disk"
	"speedcheck/internal/tui/styles"
)

var diskCmd = &cobra.Command{
	Use:   "disk",
	Short: "Measure local storage write/read speed",
	Long: `Writes random blocks to a test file (fsync after each block), reads
blocks back from shuffled offsets, then deletes the file.

Be sure the file you point to is not something you need: it is overwritten
and removed.`,
	RunE: runDisk,
}

func init() {
	def := disk.DefaultConfig()
	f := diskCmd.Flags()
	f.StringP("file", "f", def.File, "The file to read/write to")
	f.IntP("size", "s", def.SizeMB, "Total MB to write")
	f.IntP("write-block-size", "w", def.WriteBlockKB, "The block size for writing in KB")
	f.IntP("read-block-size", "r", def.ReadBlockBytes, "The block size for reading in bytes")
	f.StringP("json", "j", "", "Output to json file")
	f.Bool("drop-cache", false, "Evict the test file from the page cache before reading (Linux only)")
	bindFlags("disk", f)
}

func runDisk(cmd *cobra.Command, args []string) error {
	cfg := disk.Config{
		File:           viper.GetString("disk.file"),
		SizeMB:         viper.GetInt("disk.size"),
		WriteBlockKB:   viper.GetInt("disk.write-block-size"),
		ReadBlockBytes: viper.GetInt("disk.read-block-size"),
		DropCache:      viper.GetBool("disk.drop-cache"),
		Progress:       newProgress(),
	}
	jsonOut := viper.GetString("disk.json")

	b, err := disk.New(cfg)
	if err != nil {
		return err
	}
	if !viper.GetBool("quiet") {
		fmt.Println(styles.Title.Render("💾 Disk benchmark: " + b.Path()))
	}

	ctx, stop := interruptContext(cmd)
	defer stop()

	res, err := b.Run(ctx)
	if err != nil {
		return err
	}
	sum, err := res.Summary()
	if err != nil {
		return err
	}
	return emit(sum, jsonOut, disk.WriteText)
}
