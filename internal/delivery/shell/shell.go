package shell

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"frontdesk/internal/delivery"
	"frontdesk/internal/domain/entity"
	"frontdesk/internal/domain/service"
	"frontdesk/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// ShellParams collects everything the shell needs from the container.
type ShellParams struct {
	fx.In

	Console    *Console
	Bar        *LocationBar
	Logger     *slog.Logger
	Session    usecase.SessionUsecase
	Businesses usecase.BusinessUsecase
	Form       usecase.FormUsecase
	QRCode     service.QRCodeService
}

type shell struct {
	console    *Console
	bar        *LocationBar
	logger     *slog.Logger
	session    usecase.SessionUsecase
	businesses usecase.BusinessUsecase
	form       usecase.FormUsecase
	qr         service.QRCodeService
}

// NewShell is the constructor for the interactive shell.
func NewShell(params ShellParams) (delivery.Delivery, error) {
	return &shell{
		console:    params.Console,
		bar:        params.Bar,
		logger:     params.Logger,
		session:    params.Session,
		businesses: params.Businesses,
		form:       params.Form,
		qr:         params.QRCode,
	}, nil
}

// Serve runs the one-shot auth handshake, then the command loop until the
// user quits or input ends.
func (s *shell) Serve(ctx context.Context) error {
	result := s.session.Initialize(ctx, s.bar.Current())
	if result.Authenticated {
		s.console.Printf("Signed in as %s <%s>\n", result.Identity.Name, result.Identity.Email)
	} else {
		s.console.Printf("Not signed in. Use \"login\" to get the sign-in link.\n")
	}
	s.console.Printf("Type \"help\" for the command list.\n")

	for {
		select {
		case <-ctx.Done():
			return errors.WithStack(ctx.Err())
		default:
		}

		line, err := s.console.ReadLine("frontdesk> ")
		if err != nil {
			// EOF ends the session like "quit".
			return nil
		}

		command, arg, _ := strings.Cut(line, " ")
		arg = strings.TrimSpace(arg)

		switch command {
		case "":
			continue
		case "help":
			s.printHelp()
		case "login":
			s.login(arg)
		case "whoami":
			s.whoami()
		case "list":
			s.authenticated(func() { s.list(ctx) })
		case "add":
			s.authenticated(func() {
				s.form.New()
				s.runForm(ctx)
			})
		case "edit":
			s.authenticated(func() { s.edit(ctx, arg) })
		case "profile":
			s.authenticated(func() {
				if s.form.EditProfile(ctx) {
					s.runForm(ctx)
				}
			})
		case "delete":
			s.authenticated(func() { s.remove(ctx, arg) })
		case "logout":
			s.session.SignOut(ctx)
			s.console.Printf("Signed out.\n")
		case "quit", "exit":
			return nil
		default:
			s.console.Printf("unknown command %q; type \"help\"\n", command)
		}
	}
}

func (s *shell) printHelp() {
	s.console.Printf(`Commands:
  login [file]  show the sign-in link and QR code; with a file, save it as PNG
  whoami        show the current session
  list          list your businesses
  add           create a business
  edit <n>      edit business number n from the list
  profile       edit the business profile
  delete <n>    delete business number n from the list
  logout        sign out
  quit          exit
`)
}

// authenticated gates dashboard commands on the session store.
func (s *shell) authenticated(fn func()) {
	state, _ := s.session.Current()
	if state != entity.SessionAuthenticated {
		s.console.Error("sign in first (see \"login\")")

		return
	}
	fn()
}

func (s *shell) login(pngPath string) {
	state, identity := s.session.Current()
	if state == entity.SessionAuthenticated {
		s.console.Printf("Already signed in as %s.\n", identity.Name)

		return
	}

	url := s.session.SignInURL()
	s.console.Printf("Open this link to sign in:\n  %s\n", url)

	if pngPath != "" {
		png, err := s.qr.GenerateSignInQR(url)
		if err != nil {
			s.logger.Warn("failed to generate sign-in QR", slog.Any("error", err))
			s.console.Error("could not generate the QR image")
		} else if err := os.WriteFile(pngPath, png, 0o644); err != nil {
			s.console.Error("could not write " + pngPath)
		} else {
			s.console.Printf("QR image saved to %s\n", pngPath)
		}
	}

	rendered, err := s.qr.RenderSignInQR(url)
	if err != nil {
		s.logger.Warn("failed to render sign-in QR", slog.Any("error", err))

		return
	}
	s.console.Printf("%s\n", rendered)
	s.console.Printf("After signing in, restart with the redirect location, e.g.\n  frontdesk \"/dashboard#session_id=<token>\"\n")
}

func (s *shell) whoami() {
	state, identity := s.session.Current()
	if state != entity.SessionAuthenticated {
		s.console.Printf("Not signed in (%s).\n", state)

		return
	}
	s.console.Printf("%s <%s>\n", identity.Name, identity.Email)
}

func (s *shell) list(ctx context.Context) []*entity.Business {
	businesses := s.businesses.Load(ctx)
	if len(businesses) == 0 {
		s.console.Printf("No businesses yet. Use \"add\" to create one.\n")

		return businesses
	}

	for _, b := range businesses {
		s.console.Printf("%2d. %-24s %-12s %-16s services:%d docs:%d\n",
			b.DisplayIndex+1, b.Name, b.Type, b.Phone, len(b.Services), len(b.Documents))
	}

	return businesses
}

func (s *shell) pick(ctx context.Context, arg string) *entity.Business {
	businesses := s.businesses.Load(ctx)

	n, err := strconv.Atoi(arg)
	if err != nil || n < 1 || n > len(businesses) {
		s.console.Error("give a business number from \"list\"")

		return nil
	}

	return businesses[n-1]
}

func (s *shell) edit(ctx context.Context, arg string) {
	business := s.pick(ctx, arg)
	if business == nil {
		return
	}
	s.form.Edit(business)
	s.runForm(ctx)
}

func (s *shell) remove(ctx context.Context, arg string) {
	business := s.pick(ctx, arg)
	if business == nil {
		return
	}
	s.businesses.Delete(ctx, business)
}

// runForm drives the open draft: field prompts, then a small sub-loop for
// services, attachments, save, and cancel.
func (s *shell) runForm(ctx context.Context) {
	draft := s.form.Draft()
	if draft == nil {
		return
	}

	if types := s.form.BusinessTypes(ctx); len(types) > 0 {
		s.console.Printf("Business types: %s\n", strings.Join(types, ", "))
	}

	s.promptField("Name", draft.Name, s.form.SetName)
	s.promptField("Type", draft.Type, s.form.SetType)
	s.promptField("Phone", draft.Phone, s.form.SetPhone)

	for {
		draft = s.form.Draft()
		if draft == nil {
			return
		}
		s.console.Printf("services: %s\n", strings.Join(draft.Services, ", "))
		for _, doc := range draft.Documents {
			s.console.Printf("document %s: %s (%d bytes)\n", doc.ID, doc.Filename, doc.Size)
		}

		line, err := s.console.ReadLine("form (+tag | -n | logo <file> | doc <file> | rmdoc <id> | save | cancel)> ")
		if err != nil {
			s.form.Cancel()

			return
		}

		command, arg, _ := strings.Cut(line, " ")
		arg = strings.TrimSpace(arg)

		switch {
		case command == "save":
			if s.form.Save(ctx) != nil {
				return
			}
		case command == "cancel":
			s.form.Cancel()

			return
		case strings.HasPrefix(command, "+"):
			s.form.AddService(strings.TrimPrefix(line, "+"))
		case strings.HasPrefix(command, "-"):
			if n, err := strconv.Atoi(strings.TrimPrefix(command, "-")); err == nil {
				s.form.RemoveService(n - 1)
			}
		case command == "logo":
			s.upload(ctx, arg, s.form.UploadLogo)
		case command == "doc":
			s.upload(ctx, arg, s.form.UploadDocument)
		case command == "rmdoc":
			s.form.RemoveDocument(ctx, arg)
		case command == "":
		default:
			s.console.Printf("unknown form command %q\n", command)
		}
	}
}

func (s *shell) promptField(label, current string, set func(string)) {
	value, err := s.console.ReadLine(label + " [" + current + "]: ")
	if err != nil {
		return
	}
	if value != "" {
		set(value)
	}
}

func (s *shell) upload(ctx context.Context, path string, fn func(context.Context, entity.FileUpload) bool) {
	if path == "" {
		s.console.Error("give a file path")

		return
	}

	file, err := os.Open(path)
	if err != nil {
		s.console.Error("cannot open " + path)

		return
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		s.console.Error("cannot read " + path)

		return
	}

	fn(ctx, entity.FileUpload{
		Filename: filepath.Base(path),
		Size:     info.Size(),
		Content:  file,
	})
}
