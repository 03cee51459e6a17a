package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/spendwise/spendwise"
)

// bulkCmd holds the flags for the 'bulk' subcommand.
type bulkCmd struct {
	filterFlags
	setAccount  string
	setCategory string
	setTags     string
	addTags     string
	removeTags  string
	delete      bool
}

func (*bulkCmd) Name() string     { return "bulk" }
func (*bulkCmd) Synopsis() string { return "edit or delete every transaction a filter selects" }
func (*bulkCmd) Usage() string {
	return `sw bulk <filter flags> (-set-account <name> | -set-category <name> | -set-tags <a,b> | -add-tags <a,b> | -remove-tags <a,b> | -delete)

  Applies one or more edits to every transaction the filter selects.
  -set-category only applies to single-split transactions; multi-split
  transactions keep their per-split categories. -set-tags replaces the
  tag list, -add-tags and -remove-tags edit it. At least one filter flag
  is required.
`
}

func (c *bulkCmd) SetFlags(f *flag.FlagSet) {
	c.filterFlags.register(f)
	f.StringVar(&c.setAccount, "set-account", "", "Move the selection to this account.")
	f.StringVar(&c.setCategory, "set-category", "", "Recategorize single-split transactions of the selection.")
	f.StringVar(&c.setTags, "set-tags", "", "Replace the tags of the selection.")
	f.StringVar(&c.addTags, "add-tags", "", "Add these tags to the selection.")
	f.StringVar(&c.removeTags, "remove-tags", "", "Remove these tags from the selection.")
	f.BoolVar(&c.delete, "delete", false, "Delete the selection.")
}

func (c *bulkCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.filterFlags == (filterFlags{}) {
		fmt.Fprintln(os.Stderr, "Error: bulk requires at least one filter flag; it never selects everything implicitly.")
		return subcommands.ExitUsageError
	}

	s, db, err := OpenStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer db.Close()

	filter, err := c.filter(s)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}
	selected := s.FilterTransactions(filter)
	if len(selected) == 0 {
		fmt.Println("No transactions match.")
		return subcommands.ExitSuccess
	}
	ids := make([]string, 0, len(selected))
	for _, tx := range selected {
		ids = append(ids, tx.ID)
	}

	if c.delete {
		s.DeleteTransactions(ids)
		fmt.Printf("Deleted %d transactions.\n", len(ids))
		return SaveStore(s, db)
	}

	change, err := c.change(s)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}
	s.UpdateSelectedTransactions(ids, change)
	fmt.Printf("Updated %d transactions.\n", len(ids))
	return SaveStore(s, db)
}

// change builds the BulkChange the edit flags describe.
func (c *bulkCmd) change(s *spendwise.Store) (spendwise.BulkChange, error) {
	var change spendwise.BulkChange
	edits := 0
	if c.setAccount != "" {
		acc := s.AccountByName(c.setAccount)
		if acc == nil {
			return change, fmt.Errorf("account %q not found", c.setAccount)
		}
		change.AccountID = &acc.ID
		edits++
	}
	if c.setCategory != "" {
		change.Category = &c.setCategory
		edits++
	}
	tagFlags := 0
	switch {
	case c.setTags != "":
		change.Tags = spendwise.ParseTags(c.setTags)
		change.TagMode = spendwise.TagsReplace
		tagFlags++
	case c.addTags != "":
		change.Tags = spendwise.ParseTags(c.addTags)
		change.TagMode = spendwise.TagsAdd
		tagFlags++
	case c.removeTags != "":
		change.Tags = spendwise.ParseTags(c.removeTags)
		change.TagMode = spendwise.TagsRemove
		tagFlags++
	}
	if tagFlags > 0 {
		edits++
	}
	if edits == 0 {
		return change, fmt.Errorf("bulk requires at least one edit flag (or -delete)")
	}
	return change, nil
}
