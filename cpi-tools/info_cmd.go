package main

import (
	"fmt"
	"strings"

	"github.com/npillmayer/cpifont"
	"github.com/npillmayer/cpifont/cpiquery"
	"github.com/pterm/pterm"
	"github.com/thatisuday/commando"
)

func runInfoCommand(args map[string]commando.ArgValue, flags map[string]commando.FlagValue) {
	setDebug(flags)
	path := strings.TrimSpace(args["file"].Value)
	if path == "" {
		fatalf("CPI file path is required")
	}
	f, err := cpifont.LoadCPIFile(path)
	if err != nil {
		fatalf("%v", err)
	}
	cat, err := f.Catalog()
	if err != nil {
		fatalf("%v", err)
	}
	fmt.Printf("Path: %s\n", path)
	fmt.Printf("Format: %s (%s)\n", cat.Header.FormatID(), cat.Header.Variant())
	if cat.Extended != nil {
		fmt.Printf("Font sizes: %s\n", cellSizes(cat))
	}
	fmt.Printf("Code pages: %d, screen fonts: %d\n", cat.NumCodePages, cat.FontCount())
	pterm.DefaultTable.WithHasHeader().WithData(catalogTable(cat)).Render()
}

// catalogTable lists the entries of a catalog, one row per code page entry.
func catalogTable(cat *cpiquery.Catalog) [][]string {
	data := [][]string{
		{"Offset", "Device", "Code Page", "Name", "Fonts"},
	}
	for i := range cat.Pages {
		p := &cat.Pages[i]
		fonts := "printer, skipped"
		if !p.IsPrinter() {
			sizes := make([]string, len(p.Fonts))
			for j, sfh := range p.Fonts {
				sizes[j] = fmt.Sprintf("%dx%d", sfh.Width, sfh.Height)
			}
			fonts = strings.Join(sizes, " ")
		}
		data = append(data, []string{
			fmt.Sprintf("0x%06X", p.Offset),
			p.Entry.Device(),
			fmt.Sprintf("%d", p.Entry.CodePage),
			cpiquery.CodePageName(p.Entry.CodePage),
			fonts,
		})
	}
	return data
}

func cellSizes(cat *cpiquery.Catalog) string {
	sizes := make([]string, len(cat.Extended.CellSizes))
	for i, cell := range cat.Extended.CellSizes {
		sizes[i] = fmt.Sprintf("8x%d at 0x%X", cell, cat.Extended.Offsets[i])
	}
	return strings.Join(sizes, ", ")
}
