package commands

import (
	"QRKeeper/internal/cli/api"
	"QRKeeper/internal/config"
	"QRKeeper/internal/model"
	"QRKeeper/internal/qrcode"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"text/tabwriter"
	"time"
)

type listResponse struct {
	QRCodes     []model.OwnedQR `json:"qrCodes"`
	TotalPages  int             `json:"totalPages"`
	CurrentPage int             `json:"currentPage"`
}

// --- generate ---

type generateCmd struct{}

func (generateCmd) Name() string        { return "generate" }
func (generateCmd) Description() string { return "Create and save a QR code, optionally write PNG" }
func (generateCmd) Usage() string       { return "generate <text> [out.png]" }

func (generateCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) < 1 || args[0] == "" {
		return ErrUsage
	}
	token, err := requireToken(cfg)
	if err != nil {
		return err
	}
	resp, body, err := api.Do(ctx, http.MethodPost, endpoint(cfg, "/api/qr"), map[string]string{"text": args[0]}, token)
	if err != nil {
		return err
	}
	if resp.StatusCode != http.StatusCreated {
		return fmt.Errorf("server status %d: %s", resp.StatusCode, api.ErrorMessage(body))
	}
	var rec model.OwnedQR
	if err := json.Unmarshal(body, &rec); err != nil {
		return fmt.Errorf("decode: %w", err)
	}
	fmt.Fprintf(Out, "Saved QR code %s\n", rec.ID)

	if len(args) > 1 {
		png, err := qrcode.DecodeDataURI(rec.ImageURL)
		if err != nil {
			return err
		}
		if err := os.WriteFile(args[1], png, 0o644); err != nil {
			return fmt.Errorf("write png: %w", err)
		}
		fmt.Fprintf(Out, "PNG written to %s\n", args[1])
	}
	return nil
}

// --- list ---

type listCmd struct{}

func (listCmd) Name() string        { return "list" }
func (listCmd) Description() string { return "List your QR codes, newest first" }
func (listCmd) Usage() string       { return "list [page] [limit]" }

func (listCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	q := url.Values{}
	for i, key := range []string{"page", "limit"} {
		if len(args) <= i {
			break
		}
		n, err := strconv.Atoi(args[i])
		if err != nil || n < 1 {
			return ErrUsage
		}
		q.Set(key, strconv.Itoa(n))
	}
	token, err := requireToken(cfg)
	if err != nil {
		return err
	}
	target := endpoint(cfg, "/api/qr")
	if len(q) > 0 {
		target += "?" + q.Encode()
	}
	resp, body, err := api.Do(ctx, http.MethodGet, target, nil, token)
	if err != nil {
		return err
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("server status %d: %s", resp.StatusCode, api.ErrorMessage(body))
	}
	var lr listResponse
	if err := json.Unmarshal(body, &lr); err != nil {
		return fmt.Errorf("decode: %w", err)
	}

	tw := tabwriter.NewWriter(Out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tGENERATED\tTEXT")
	for _, r := range lr.QRCodes {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", r.ID, r.GeneratedAt.Local().Format(time.DateTime), r.Text)
	}
	_ = tw.Flush()
	fmt.Fprintf(Out, "page %d of %d\n", lr.CurrentPage, lr.TotalPages)
	return nil
}

// --- delete ---

type deleteCmd struct{}

func (deleteCmd) Name() string        { return "delete" }
func (deleteCmd) Description() string { return "Delete one of your QR codes" }
func (deleteCmd) Usage() string       { return "delete <id>" }

func (deleteCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) < 1 || args[0] == "" {
		return ErrUsage
	}
	token, err := requireToken(cfg)
	if err != nil {
		return err
	}
	resp, body, err := api.Do(ctx, http.MethodDelete, endpoint(cfg, "/api/qr/"+url.PathEscape(args[0])), nil, token)
	if err != nil {
		return err
	}
	if resp.StatusCode != http.StatusOK {
		return errors.New(api.ErrorMessage(body))
	}
	fmt.Fprintln(Out, api.ErrorMessage(body))
	return nil
}

// --- share ---

type shareCmd struct{}

func (shareCmd) Name() string        { return "share" }
func (shareCmd) Description() string { return "Email one of your QR codes" }
func (shareCmd) Usage() string       { return "share <id> <email>" }

func (shareCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) < 2 {
		return ErrUsage
	}
	token, err := requireToken(cfg)
	if err != nil {
		return err
	}
	payload := map[string]string{"qrCodeId": args[0], "recipientEmail": args[1]}
	resp, body, err := api.Do(ctx, http.MethodPost, endpoint(cfg, "/api/qr/share"), payload, token)
	if err != nil {
		return err
	}
	if resp.StatusCode != http.StatusOK {
		return errors.New(api.ErrorMessage(body))
	}
	fmt.Fprintln(Out, api.ErrorMessage(body))
	return nil
}

// --- upload ---

type uploadCmd struct{}

func (uploadCmd) Name() string        { return "upload" }
func (uploadCmd) Description() string { return "Upload a file (logo, attachment)" }
func (uploadCmd) Usage() string       { return "upload <file>" }

func (uploadCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) < 1 || args[0] == "" {
		return ErrUsage
	}
	token, err := requireToken(cfg)
	if err != nil {
		return err
	}
	resp, body, err := api.PostMultipartFile(ctx, endpoint(cfg, "/api/uploads"), args[0], token)
	if err != nil {
		return err
	}
	if resp.StatusCode != http.StatusCreated {
		return fmt.Errorf("server status %d: %s", resp.StatusCode, api.ErrorMessage(body))
	}
	var ur struct {
		Path string `json:"path"`
	}
	if err := json.Unmarshal(body, &ur); err != nil {
		return fmt.Errorf("decode: %w", err)
	}
	fmt.Fprintf(Out, "Uploaded: %s\n", endpoint(cfg, ur.Path))
	return nil
}

func init() {
	RegisterCmd(generateCmd{})
	RegisterCmd(listCmd{})
	RegisterCmd(deleteCmd{})
	RegisterCmd(shareCmd{})
	RegisterCmd(uploadCmd{})
}
