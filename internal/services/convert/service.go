package convert

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"io"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/emersion/go-vcard"
	logging "github.com/ipfs/go-log/v2"

	"abook/internal/abook"
	"abook/internal/domain"
	"abook/internal/etag"
	"abook/internal/mapping"
	"abook/internal/vcf"
)

var log = logging.Logger("abook")

// Service converts between addressbooks and vCards for one run.
//
// Export: Decode addressbook -> select entries -> map -> UID + photo ->
// encode vCards. Import: decode vCards -> map -> hand records to the
// caller, who writes the addressbook and then calls SavePhotos.
type Service struct {
	mapper   *mapping.Mapper
	photos   domain.PhotoStore
	fqdn     string
	warn     domain.WarningSink
	progress func(total int) domain.Progress
}

// Result summarises a conversion.
type Result struct {
	Contacts int
	Photos   int
}

// Entry describes one addressbook entry for listings.
type Entry struct {
	UID  string
	ETag string
	Name string
}

// Import is the outcome of reading vCards: the records to store and the
// photos to write once the addressbook is committed.
type Import struct {
	Records []domain.Record
	photos  []photo
}

type photo struct {
	name string
	ext  string
	data []byte
}

// Photos returns the number of photos waiting for SavePhotos.
func (imp *Import) Photos() int { return len(imp.photos) }

// New returns a Service. photos may be nil to skip photo handling, warn
// and progress may be nil.
func New(
	mapper *mapping.Mapper,
	photos domain.PhotoStore,
	fqdn string,
	warn domain.WarningSink,
	progress func(total int) domain.Progress,
) *Service {
	if warn == nil {
		warn = domain.Discard
	}
	return &Service{mapper: mapper, photos: photos, fqdn: fqdn, warn: warn, progress: progress}
}

// BookToVCards maps every entry of b to a vCard with UID and photo.
func (s *Service) BookToVCards(b *abook.Book) ([]vcard.Card, Result, error) {
	var res Result
	bar := s.bar(len(b.Entries))
	cards := make([]vcard.Card, 0, len(b.Entries))
	for _, e := range b.Entries {
		card := s.mapper.ToVCard(e.Record)
		card.Add(vcard.FieldUID, &vcard.Field{Value: etag.UID(e.ID, s.fqdn)})

		ok, err := s.addPhoto(card, e.Record.Get(domain.FieldName))
		if err != nil {
			return nil, res, err
		}
		if ok {
			res.Photos++
		}
		cards = append(cards, card)
		_ = bar.Add(1)
	}
	_ = bar.Finish()
	res.Contacts = len(cards)
	return cards, res, nil
}

// AbookToVCard decodes an addressbook from in and writes vCards to out.
// With uids only those entries are written, in the given order. name
// labels errors. Nothing is written unless the whole input is valid.
func (s *Service) AbookToVCard(in io.Reader, name string, out io.Writer, uids ...string) (Result, error) {
	b, err := abook.Decode(in)
	if err != nil {
		return Result{}, domain.WithFile(err, name)
	}
	if len(uids) > 0 {
		if b, err = s.Select(b, uids...); err != nil {
			return Result{}, err
		}
	}
	cards, res, err := s.BookToVCards(b)
	if err != nil {
		return res, err
	}
	if err := vcf.Encode(out, cards); err != nil {
		return res, err
	}
	log.Debugf("converted %s contacts from %s", humanize.Comma(int64(res.Contacts)), name)
	return res, nil
}

// WriteUIDs decodes an addressbook from in and writes one "UID ETAG" line
// per entry to out.
func (s *Service) WriteUIDs(in io.Reader, name string, out io.Writer) error {
	b, err := abook.Decode(in)
	if err != nil {
		return domain.WithFile(err, name)
	}
	var sb strings.Builder
	for _, e := range s.Entries(b) {
		fmt.Fprintf(&sb, "%s %s\n", e.UID, e.ETag)
	}
	_, err = io.WriteString(out, sb.String())
	return err
}

// Select returns a book holding only the entries named by uids.
func (s *Service) Select(b *abook.Book, uids ...string) (*abook.Book, error) {
	out := &abook.Book{Program: b.Program, Version: b.Version}
	for _, uid := range uids {
		id, err := etag.ParseUID(uid)
		if err != nil {
			return nil, err
		}
		e, ok := b.Find(id)
		if !ok {
			return nil, fmt.Errorf("convert: no entry with UID %s", uid)
		}
		out.Entries = append(out.Entries, e)
	}
	return out, nil
}

// VCardToAbook decodes vCards from in and maps them to records. name
// labels errors.
func (s *Service) VCardToAbook(in io.Reader, name string) (*Import, error) {
	cards, err := s.ParseVCards(in, name)
	if err != nil {
		return nil, err
	}
	return s.VCardsToRecords(cards), nil
}

// ParseVCards decodes vCard text from in. name labels errors.
func (s *Service) ParseVCards(in io.Reader, name string) ([]vcard.Card, error) {
	cards, err := vcf.Decode(in, s.warn)
	if err != nil {
		return nil, domain.WithFile(err, name)
	}
	return cards, nil
}

// VCardsToRecords maps cards to Abook records and collects their photos.
// Nothing is written.
func (s *Service) VCardsToRecords(cards []vcard.Card) *Import {
	bar := s.bar(len(cards))
	imp := &Import{Records: make([]domain.Record, 0, len(cards))}
	for _, c := range cards {
		r := s.mapper.ToAbook(c, s.warn)
		if p, ok := s.photoOf(c, r.Get(domain.FieldName)); ok {
			imp.photos = append(imp.photos, p)
		}
		imp.Records = append(imp.Records, r)
		_ = bar.Add(1)
	}
	_ = bar.Finish()
	return imp
}

// Append adds the imported records after the last entry of b.
func (s *Service) Append(b *abook.Book, imp *Import) {
	b.Append(imp.Records...)
}

// Replace swaps entry uid of b for the single imported record.
func (s *Service) Replace(b *abook.Book, uid string, imp *Import) error {
	if len(imp.Records) != 1 {
		return fmt.Errorf("convert: replacing %s needs exactly one vCard, got %d", uid, len(imp.Records))
	}
	id, err := etag.ParseUID(uid)
	if err != nil {
		return err
	}
	return b.Replace(id, imp.Records[0])
}

// Remove deletes entry uid from b.
func (s *Service) Remove(b *abook.Book, uid string) error {
	id, err := etag.ParseUID(uid)
	if err != nil {
		return err
	}
	return b.Remove(id)
}

// SavePhotos writes the photos of imp. Call it after the addressbook was
// written. Failures are warnings: a photo never aborts a conversion.
func (s *Service) SavePhotos(imp *Import) int {
	if s.photos == nil {
		return 0
	}
	saved := 0
	for _, p := range imp.photos {
		ok, err := s.photos.SavePhoto(p.name, p.ext, p.data)
		switch {
		case err != nil:
			log.Warnw("photo not written", "name", p.name, "err", err)
		case !ok:
			log.Debugf("no photo directory, skipping photo of %q", p.name)
		default:
			saved++
		}
	}
	return saved
}

// Entries lists UID and ETag of every entry in b.
func (s *Service) Entries(b *abook.Book) []Entry {
	cfg := s.mapper.Config()
	out := make([]Entry, len(b.Entries))
	for i, e := range b.Entries {
		out[i] = Entry{
			UID:  etag.UID(e.ID, s.fqdn),
			ETag: etag.Of(e.Record, cfg),
			Name: e.Record.Get(domain.FieldName),
		}
	}
	return out
}

func (s *Service) addPhoto(card vcard.Card, name string) (bool, error) {
	if s.photos == nil {
		return false, nil
	}
	data, ok, err := s.photos.LoadPhoto(name)
	if err != nil || !ok {
		return false, err
	}
	card.Add(vcard.FieldPhoto, &vcard.Field{
		Value: base64.StdEncoding.EncodeToString(data),
		Params: vcard.Params{
			"ENCODING":      {"b"},
			vcard.ParamType: {"JPEG"},
		},
	})
	log.Debugf("embedded %s photo for %q", humanize.Bytes(uint64(len(data))), name)
	return true, nil
}

// photoOf decodes the first PHOTO of c. Undecodable photos are reported
// as warnings.
func (s *Service) photoOf(c vcard.Card, name string) (photo, bool) {
	f := c.Get(vcard.FieldPhoto)
	if s.photos == nil || f == nil || name == "" {
		return photo{}, false
	}
	data, ext, ok := decodePhoto(f)
	if !ok {
		s.warn.Warn(domain.UnsupportedFieldWarning{
			Property: vcard.FieldPhoto,
			Reason:   "only inline base64 photos are supported, skipped for " + name,
		})
		return photo{}, false
	}
	return photo{name: name, ext: ext, data: data}, true
}

// decodePhoto handles `PHOTO;ENCODING=b;TYPE=JPEG:<base64>` and
// `PHOTO:data:image/jpeg;base64,<base64>`.
func decodePhoto(f *vcard.Field) ([]byte, string, bool) {
	value := strings.TrimSpace(f.Value)
	ext := "jpeg"
	if rest, ok := strings.CutPrefix(value, "data:"); ok {
		meta, payload, ok := strings.Cut(rest, ",")
		if !ok || !strings.HasSuffix(meta, ";base64") {
			return nil, "", false
		}
		if mime, _, _ := strings.Cut(meta, ";"); strings.HasPrefix(mime, "image/") {
			ext = strings.TrimPrefix(mime, "image/")
		}
		value = payload
	} else {
		encoded := false
		for k, vals := range f.Params {
			for _, v := range vals {
				switch {
				case strings.EqualFold(k, "ENCODING") && (strings.EqualFold(v, "b") || strings.EqualFold(v, "base64")):
					encoded = true
				case strings.EqualFold(k, vcard.ParamType) && v != "":
					ext = strings.ToLower(v)
				}
			}
		}
		if !encoded {
			return nil, "", false
		}
	}
	value = strings.Join(strings.Fields(value), "")
	data, err := base64.StdEncoding.DecodeString(value)
	if err != nil {
		if data, err = base64.RawStdEncoding.DecodeString(strings.TrimRight(value, "=")); err != nil {
			return nil, "", false
		}
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, "", false
	}
	return data, ext, true
}

func (s *Service) bar(total int) domain.Progress {
	if s.progress != nil {
		if p := s.progress(total); p != nil {
			return p
		}
	}
	return nopProgress{}
}

type nopProgress struct{}

func (nopProgress) Add(int) error { return nil }
func (nopProgress) Finish() error { return nil }
