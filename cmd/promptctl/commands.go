package main

import (
	"context"
	"fmt"
	"os"

	"typeprompt/internal/catalog"
	"typeprompt/internal/config"
	"typeprompt/internal/domain"
	"typeprompt/internal/domain/entities"
	"typeprompt/internal/domain/locale"
	"typeprompt/internal/infrastructure/database"
	"typeprompt/pkg/tz"
)

type command struct {
	name  string
	usage string
	args  int
	run   func(ctx context.Context, a *app, args []string) error
}

var commands = []command{
	{name: "migrate", usage: "migrate", args: 0, run: cmdMigrate},
	{name: "types", usage: "types", args: 0, run: cmdTypes},
	{name: "add", usage: "add <type> <textName|-> <locale> <text>", args: 4, run: cmdAdd},
	{name: "seed", usage: "seed <sourceLocale> <targetLocale>", args: 2, run: cmdSeed},
	{name: "list", usage: "list <locale>", args: 1, run: cmdList},
	{name: "translate", usage: "translate <key> <locale> <text>", args: 3, run: cmdTranslate},
	{name: "delete", usage: "delete <key> <locale>", args: 2, run: cmdDelete},
	{name: "export", usage: "export <locale> <file>", args: 2, run: cmdExport},
	{name: "import", usage: "import <file>", args: 1, run: cmdImport},
}

func lookupCommand(name string) (command, bool) {
	for _, c := range commands {
		if c.name == name {
			return c, true
		}
	}
	return command{}, false
}

func cmdMigrate(_ context.Context, a *app, _ []string) error {
	// SQLite is migrated when it is opened.
	if a.cfg.Store == config.StorePostgres {
		if err := database.RunMigrations(a.cfg.DatabaseURL, a.log); err != nil {
			return err
		}
	}
	a.say("cli.migrated", nil)
	return nil
}

func cmdTypes(_ context.Context, a *app, _ []string) error {
	names := a.registry.Names()
	a.say("cli.types_header", map[string]any{"Count": len(names)})
	for _, name := range names {
		fmt.Fprintf(a.out, "  %s\n", name)
	}
	return nil
}

func cmdAdd(ctx context.Context, a *app, args []string) error {
	textName := args[1]
	if textName == "-" {
		textName = ""
	}
	subject, ok := catalog.ByShortName(args[0])
	if !ok {
		if subject = a.registry.ResolveType(args[0]); subject == nil {
			return &domain.PromptError{Err: domain.ErrUnresolvableType, TypeName: args[0], TextName: textName}
		}
	}
	loc, err := locale.Parse(args[2])
	if err != nil {
		return err
	}

	p, err := a.svc.AddPrompt(ctx, subject, textName, loc, args[3], a.cfg.Editor)
	if err != nil {
		return err
	}
	a.say("cli.added", map[string]any{"Prompt": p.String(), "Key": p.Key().String()})
	return nil
}

func cmdSeed(ctx context.Context, a *app, args []string) error {
	source, err := locale.Parse(args[0])
	if err != nil {
		return err
	}
	target, err := locale.Parse(args[1])
	if err != nil {
		return err
	}

	n, err := a.svc.SeedLocale(ctx, source, target)
	if err != nil {
		return err
	}
	a.say("cli.seeded", map[string]any{"Count": n, "Source": source.String(), "Target": target.String()})
	return nil
}

func cmdList(ctx context.Context, a *app, args []string) error {
	loc, err := locale.Parse(args[0])
	if err != nil {
		return err
	}
	prompts, err := a.svc.ListLocale(ctx, loc)
	if err != nil {
		return err
	}
	if len(prompts) == 0 {
		a.say("cli.list_empty", map[string]any{"Locale": loc.String()})
		return nil
	}

	a.say("cli.list_header", map[string]any{"Count": len(prompts), "Locale": loc.String(), "Name": loc.DisplayName()})
	for _, p := range prompts {
		fmt.Fprintf(a.out, "%s  %-48s  %s\n", p.Key(), p.String(), tz.Format(p.UpdatedAt, a.loc))
	}
	return nil
}

func cmdTranslate(ctx context.Context, a *app, args []string) error {
	key, err := entities.ParseTypePromptKey(args[0])
	if err != nil {
		return err
	}
	loc, err := locale.Parse(args[1])
	if err != nil {
		return err
	}

	p, err := a.svc.UpdateTranslation(ctx, key, loc, args[2], a.cfg.Editor)
	if err != nil {
		return err
	}
	a.say("cli.translated", map[string]any{"Prompt": p.String()})
	return nil
}

func cmdDelete(ctx context.Context, a *app, args []string) error {
	key, err := entities.ParseTypePromptKey(args[0])
	if err != nil {
		return err
	}
	loc, err := locale.Parse(args[1])
	if err != nil {
		return err
	}

	if err := a.svc.DeletePrompt(ctx, key, loc, a.cfg.Editor); err != nil {
		return err
	}
	a.say("cli.deleted", map[string]any{"Key": key.String(), "Locale": loc.String()})
	return nil
}

func cmdExport(ctx context.Context, a *app, args []string) error {
	loc, err := locale.Parse(args[0])
	if err != nil {
		return err
	}
	f, err := os.Create(args[1])
	if err != nil {
		return fmt.Errorf("create %s: %w", args[1], err)
	}
	defer f.Close()

	n, err := a.svc.Export(ctx, loc, f)
	if err != nil {
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", args[1], err)
	}
	a.say("cli.exported", map[string]any{"Count": n, "File": args[1]})
	return nil
}

func cmdImport(ctx context.Context, a *app, args []string) error {
	f, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("open %s: %w", args[0], err)
	}
	defer f.Close()

	n, err := a.svc.Import(ctx, f, a.cfg.Editor)
	if err != nil {
		return err
	}
	a.say("cli.imported", map[string]any{"Count": n, "File": args[0]})
	return nil
}
