// Package tools holds ancillary reporting over a completed link.
package tools

import (
	"fmt"
	"io"
	"sort"

	"github.com/lookbusy1344/marie-linker/linker"
)

// XRefEntry collects everything known about one symbol across the link:
// where it is defined and which modules pull it in through their use lists.
type XRefEntry struct {
	Name     string
	Defined  bool
	Module   int // 1-based defining module
	Addr     int
	Uses     []XRefUse
	Resolved int // uselist slots naming this symbol that an E-mode instruction referenced, once per slot
}

// XRefUse is one appearance of a symbol in a module's use list
type XRefUse struct {
	Module     int // 1-based
	Slot       int // uselist index
	Referenced bool
}

// BuildXRef assembles the cross-reference from a link report. Symbols that
// appear only in use lists (never defined) get an entry too.
func BuildXRef(rep *linker.Report) []*XRefEntry {
	byName := make(map[string]*XRefEntry)

	for _, sym := range rep.Symbols {
		byName[sym.Name] = &XRefEntry{
			Name:    sym.Name,
			Defined: true,
			Module:  sym.Module,
			Addr:    sym.Addr,
		}
	}

	for _, mu := range rep.Uses {
		for slot, name := range mu.UseList {
			entry, ok := byName[name]
			if !ok {
				entry = &XRefEntry{Name: name}
				byName[name] = entry
			}
			use := XRefUse{Module: mu.Module, Slot: slot, Referenced: mu.SlotReferenced(slot)}
			entry.Uses = append(entry.Uses, use)
			if use.Referenced {
				entry.Resolved++
			}
		}
	}

	entries := make([]*XRefEntry, 0, len(byName))
	for _, entry := range byName {
		entries = append(entries, entry)
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Name < entries[j].Name
	})
	return entries
}

// WriteXRef prints the cross-reference report. The format is ancillary and
// not part of the linker's fixed output contract.
func WriteXRef(w io.Writer, rep *linker.Report) {
	entries := BuildXRef(rep)

	fmt.Fprintln(w, "Cross Reference")
	fmt.Fprintln(w, "===============")

	if len(entries) == 0 {
		fmt.Fprintln(w, "no symbols")
		return
	}

	for _, entry := range entries {
		if entry.Defined {
			fmt.Fprintf(w, "%-16s defined in module %d at %d", entry.Name, entry.Module, entry.Addr)
		} else {
			fmt.Fprintf(w, "%-16s undefined", entry.Name)
		}
		if len(entry.Uses) == 0 {
			fmt.Fprint(w, ", no uselist entries\n")
			continue
		}
		fmt.Fprintf(w, ", %d resolved reference(s)\n", entry.Resolved)
		for _, use := range entry.Uses {
			status := "unused"
			if use.Referenced {
				status = "referenced"
			}
			fmt.Fprintf(w, "    uselist[%d] of module %d (%s)\n", use.Slot, use.Module, status)
		}
	}
}
