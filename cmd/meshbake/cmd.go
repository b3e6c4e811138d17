// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"cogentcore.org/meshbake/bake"
	"cogentcore.org/meshbake/base/fsx"
	"cogentcore.org/meshbake/config"
	"cogentcore.org/meshbake/grog"
	"cogentcore.org/meshbake/math32"
	"cogentcore.org/meshbake/meshbuf"
	"cogentcore.org/meshbake/scene"
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	var vv, v, q bool
	root := &cobra.Command{
		Use:           "meshbake",
		Short:         "Generate procedural meshes into GPU-ready buffer files",
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			grog.UserLevel = grog.LevelFromFlags(vv, v, q)
			grog.SetDefaultLogger()
		},
	}
	pf := root.PersistentFlags()
	pf.BoolVar(&vv, "vv", false, "print debug messages")
	pf.BoolVarP(&v, "verbose", "v", false, "print info messages")
	pf.BoolVarP(&q, "quiet", "q", false, "print only errors")

	root.AddCommand(newBuildCmd(), newInspectCmd(), newInitCmd())
	return root
}

func newBuildCmd() *cobra.Command {
	var cfgFile, outDir string
	cmd := &cobra.Command{
		Use:   "build",
		Short: "Generate the configured meshes and write their buffers and scene",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cfgFile)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("output") {
				cfg.OutputDir = outDir
			}
			sc, err := bake.Run(cfg)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %d meshes to %s\n", len(sc.Meshes), fsx.JoinOutput(cfg.OutputDir, cfg.Scene))
			return nil
		},
	}
	cmd.Flags().StringVarP(&cfgFile, "config", "c", "", "TOML config file; the default box and torus if not set")
	cmd.Flags().StringVarP(&outDir, "output", "o", "", "output directory, overriding the config")
	return cmd
}

func loadConfig(filename string) (*config.Config, error) {
	if filename == "" {
		cfg := &config.Config{}
		cfg.Defaults()
		return cfg, nil
	}
	return config.Open(filename)
}

func newInspectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <scene file>",
		Short: "Check the buffer files of a scene against its descriptors and print them",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fn := args[0]
			sc, err := scene.Open(fn)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, d := range sc.Meshes {
				id := d.Indices.View.Buffer
				bp, err := sc.BufferPath(fn, id)
				if err != nil {
					return err
				}
				b, err := meshbuf.OpenFile(bp, d)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "%s: buffer %d %s: %d vertices, %d indices, %d bytes, material %d, bbox %v\n",
					d.Name, id, bp, b.NumVertex(), b.NumIndex(), b.Len(), d.Material, bounds(b))
			}
			return nil
		},
	}
}

// bounds returns the bounding box of the vertex positions in b.
func bounds(b *meshbuf.Buffer) math32.Box3 {
	bb := math32.B3Empty()
	for i := range b.NumVertex() {
		bb.ExpandByPoint(b.VertexAt(i).Pos)
	}
	return bb
}

func newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init <config file>",
		Short: "Write the default config to a TOML file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			exists, err := fsx.FileExists(args[0])
			if err != nil {
				return err
			}
			if exists {
				return fmt.Errorf("%s already exists", args[0])
			}
			cfg := &config.Config{}
			cfg.Defaults()
			return cfg.Save(args[0])
		},
	}
}
