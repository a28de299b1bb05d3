// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/MKhiriev/miam-miam/internal/adapter"
	"github.com/MKhiriev/miam-miam/models"
)

const usage = `usage: miam-client [-a address] [-t token] [-timeout d] <command> [args]

commands:
  register <email> <password> <name>
  login <email> <password>            prints the token to pass with -t
  list [query] [type]
  suggest <query> [limit]
  get <id>
  create <recipe.json>
  update <id> <recipe.json>
  delete <id>
  favorite <id>
  review <id> <rating> [comment]      adds, or updates an existing review
  unreview <id>
  upload <image>
  version
  build-info
`

var errUsage = errors.New("invalid command line")

type command struct {
	minArgs int
	run     func(ctx context.Context, api adapter.APIClient, args []string, out io.Writer) error
}

var commands = map[string]command{
	"register": {minArgs: 3, run: register},
	"login":    {minArgs: 2, run: login},
	"list":     {run: listRecipes},
	"suggest":  {minArgs: 1, run: suggestRecipes},
	"get":      {minArgs: 1, run: getRecipe},
	"create":   {minArgs: 1, run: createRecipe},
	"update":   {minArgs: 2, run: updateRecipe},
	"delete":   {minArgs: 1, run: deleteRecipe},
	"favorite": {minArgs: 1, run: toggleFavorite},
	"review":   {minArgs: 2, run: review},
	"unreview": {minArgs: 1, run: deleteReview},
	"upload":   {minArgs: 1, run: uploadImage},
	"version":  {run: version},
}

func run(ctx context.Context, api adapter.APIClient, args []string, out io.Writer) error {
	if len(args) == 0 {
		fmt.Fprint(out, usage)
		return errUsage
	}

	cmd, ok := commands[args[0]]
	if !ok || len(args)-1 < cmd.minArgs {
		fmt.Fprint(out, usage)
		return fmt.Errorf("%w: %q", errUsage, args[0])
	}

	return cmd.run(ctx, api, args[1:], out)
}

func printJSON(out io.Writer, v any) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func readRecipe(path string) (models.RecipeInput, error) {
	var in models.RecipeInput

	data, err := os.ReadFile(path)
	if err != nil {
		return in, fmt.Errorf("read recipe file: %w", err)
	}
	if err = json.Unmarshal(data, &in); err != nil {
		return in, fmt.Errorf("decode recipe file: %w", err)
	}
	return in, nil
}

func register(ctx context.Context, api adapter.APIClient, args []string, out io.Writer) error {
	err := api.Register(ctx, models.RegisterRequest{Email: args[0], Password: args[1], Name: args[2]})
	if err != nil {
		return err
	}
	fmt.Fprintln(out, "account created")
	return nil
}

func login(ctx context.Context, api adapter.APIClient, args []string, out io.Writer) error {
	resp, err := api.Login(ctx, models.LoginRequest{Email: args[0], Password: args[1]})
	if err != nil {
		return err
	}
	fmt.Fprintln(out, resp.Token)
	return nil
}

func listRecipes(ctx context.Context, api adapter.APIClient, args []string, out io.Writer) error {
	var query models.ListingQuery
	if len(args) > 0 {
		query.Q = args[0]
	}
	if len(args) > 1 {
		query.Type = args[1]
	}

	recipes, err := api.ListRecipes(ctx, query)
	if err != nil {
		return err
	}
	for _, r := range recipes {
		fmt.Fprintf(out, "%s\t%s\t%s\t%.1f\t%s\n", r.ID, r.Name, r.Type, r.Rating, r.Visibility)
	}
	return nil
}

func suggestRecipes(ctx context.Context, api adapter.APIClient, args []string, out io.Writer) error {
	limit := 0
	if len(args) > 1 {
		n, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("%w: limit must be a number", errUsage)
		}
		limit = n
	}

	names, err := api.SuggestRecipes(ctx, args[0], limit)
	if err != nil {
		return err
	}
	for _, name := range names {
		fmt.Fprintln(out, name)
	}
	return nil
}

func getRecipe(ctx context.Context, api adapter.APIClient, args []string, out io.Writer) error {
	recipe, err := api.GetRecipe(ctx, args[0])
	if err != nil {
		return err
	}
	return printJSON(out, recipe)
}

func createRecipe(ctx context.Context, api adapter.APIClient, args []string, out io.Writer) error {
	in, err := readRecipe(args[0])
	if err != nil {
		return err
	}

	recipe, err := api.CreateRecipe(ctx, in)
	if err != nil {
		return err
	}
	return printJSON(out, recipe)
}

func updateRecipe(ctx context.Context, api adapter.APIClient, args []string, out io.Writer) error {
	in, err := readRecipe(args[1])
	if err != nil {
		return err
	}

	recipe, err := api.UpdateRecipe(ctx, args[0], in)
	if err != nil {
		return err
	}
	return printJSON(out, recipe)
}

func deleteRecipe(ctx context.Context, api adapter.APIClient, args []string, out io.Writer) error {
	if err := api.DeleteRecipe(ctx, args[0]); err != nil {
		return err
	}
	fmt.Fprintln(out, "recipe deleted")
	return nil
}

func toggleFavorite(ctx context.Context, api adapter.APIClient, args []string, out io.Writer) error {
	favorites, err := api.ToggleFavorite(ctx, args[0])
	if err != nil {
		return err
	}
	return printJSON(out, favorites)
}

// review adds a review and falls back to updating it when the caller has
// already reviewed the recipe.
func review(ctx context.Context, api adapter.APIClient, args []string, out io.Writer) error {
	rating, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("%w: rating must be a number", errUsage)
	}

	in := models.ReviewInput{Rating: rating}
	if len(args) > 2 {
		in.Comment = args[2]
	}

	saved, err := api.AddReview(ctx, args[0], in)
	if errors.Is(err, adapter.ErrBadRequest) {
		saved, err = api.UpdateReview(ctx, args[0], in)
	}
	if err != nil {
		return err
	}
	return printJSON(out, saved)
}

func deleteReview(ctx context.Context, api adapter.APIClient, args []string, out io.Writer) error {
	if err := api.DeleteReview(ctx, args[0]); err != nil {
		return err
	}
	fmt.Fprintln(out, "review deleted")
	return nil
}

func uploadImage(ctx context.Context, api adapter.APIClient, args []string, out io.Writer) error {
	url, err := api.UploadImage(ctx, args[0])
	if err != nil {
		return err
	}
	fmt.Fprintln(out, url)
	return nil
}

func version(ctx context.Context, api adapter.APIClient, _ []string, out io.Writer) error {
	v, err := api.Version(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintln(out, v)
	return nil
}
