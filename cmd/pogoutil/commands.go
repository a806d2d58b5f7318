package main

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/osse101/pogoutil/internal/domain"
	"github.com/osse101/pogoutil/internal/enum"
	"github.com/osse101/pogoutil/internal/inventory"
	"github.com/osse101/pogoutil/internal/logger"
	"github.com/osse101/pogoutil/internal/utils"
)

// errUsage marks a command invoked with the wrong arguments
var errUsage = errors.New("usage")

// env is what every command needs to do its work
type env struct {
	out     io.Writer
	decoder inventory.Decoder
	enums   *enum.Registry
}

func (e *env) split(path string) (domain.PartitionedInventory, error) {
	resp, err := e.decoder.Load(path)
	if err != nil {
		return domain.PartitionedInventory{}, err
	}
	p := utils.SplitInventory(resp)
	logger.Debug("Split inventory", "path", path, "pokemon", len(p.Pokemon), "items", len(p.Items))
	return p, nil
}

func oneArg(cmd Command, args []string) (string, error) {
	if len(args) != 1 {
		return "", fmt.Errorf("%w: pogoutil %s", errUsage, cmd.Usage())
	}
	return args[0], nil
}

// SplitCommand prints the partition of a saved inventory response
type SplitCommand struct{ *env }

func (c *SplitCommand) Name() string        { return "split" }
func (c *SplitCommand) Usage() string       { return "split <inventory.json>" }
func (c *SplitCommand) Description() string { return "Partition an inventory response by payload kind" }

func (c *SplitCommand) Run(args []string) error {
	path, err := oneArg(c, args)
	if err != nil {
		return err
	}
	p, err := c.split(path)
	if err != nil {
		return err
	}
	return utils.WriteJSON(c.out, p)
}

// SummaryCommand prints counts, player progress and per-pokemon IVs
type SummaryCommand struct{ *env }

func (c *SummaryCommand) Name() string        { return "summary" }
func (c *SummaryCommand) Usage() string       { return "summary <inventory.json>" }
func (c *SummaryCommand) Description() string { return "Summarize an inventory response" }

func (c *SummaryCommand) Run(args []string) error {
	path, err := oneArg(c, args)
	if err != nil {
		return err
	}
	p, err := c.split(path)
	if err != nil {
		return err
	}
	return utils.WriteJSON(c.out, inventory.Summarize(p, c.enums))
}

// IVsCommand prints the individual values of every pokemon
type IVsCommand struct{ *env }

func (c *IVsCommand) Name() string        { return "ivs" }
func (c *IVsCommand) Usage() string       { return "ivs <inventory.json>" }
func (c *IVsCommand) Description() string { return "List individual values of every pokemon" }

type ivRow struct {
	ID string `json:"id"`
	domain.IVs
}

func (c *IVsCommand) Run(args []string) error {
	path, err := oneArg(c, args)
	if err != nil {
		return err
	}
	p, err := c.split(path)
	if err != nil {
		return err
	}

	rows := make([]ivRow, 0, len(p.Pokemon))
	for _, pokemon := range p.Pokemon {
		if pokemon.IsEgg {
			continue
		}
		ivs, err := utils.IVsFromPokemon(pokemon)
		if err != nil {
			return err
		}
		rows = append(rows, ivRow{ID: pokemon.ID, IVs: ivs})
	}
	return utils.WriteJSON(c.out, rows)
}

// EnumCommand prints the label of an enum value
type EnumCommand struct{ *env }

func (c *EnumCommand) Name() string        { return "enum" }
func (c *EnumCommand) Usage() string       { return "enum <EnumName> <value>" }
func (c *EnumCommand) Description() string { return "Print the readable name of an enum value" }

func (c *EnumCommand) Run(args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("%w: pogoutil %s", errUsage, c.Usage())
	}
	value, err := strconv.ParseInt(args[1], 10, 32)
	if err != nil {
		return fmt.Errorf("%w: %q is not a 32-bit integer", domain.ErrInvalidInput, args[1])
	}
	label, err := c.enums.Label(args[0], int32(value))
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(c.out, label)
	return err
}

// EnumsCommand lists the known enum tables
type EnumsCommand struct{ *env }

func (c *EnumsCommand) Name() string        { return "enums" }
func (c *EnumsCommand) Usage() string       { return "enums" }
func (c *EnumsCommand) Description() string { return "List the known enum tables" }

func (c *EnumsCommand) Run(args []string) error {
	if len(args) != 0 {
		return fmt.Errorf("%w: pogoutil %s", errUsage, c.Usage())
	}
	for _, name := range c.enums.Names() {
		if _, err := fmt.Fprintln(c.out, name); err != nil {
			return err
		}
	}
	return nil
}

func newCommandRegistry(e *env) *Registry {
	r := NewRegistry()
	r.Register(&SplitCommand{e})
	r.Register(&SummaryCommand{e})
	r.Register(&IVsCommand{e})
	r.Register(&EnumCommand{e})
	r.Register(&EnumsCommand{e})
	return r
}
