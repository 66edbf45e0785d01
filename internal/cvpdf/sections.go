package cvpdf

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/yoockh/hojadevida/internal/models"
)

const (
	notSpecified  = "No especificado"
	embeddedNote  = "(Incrustado abajo)"
	recordSpacing = 0.1 * inch

	SectionPersonal     = "DATOS PERSONALES"
	SectionExperience   = "EXPERIENCIA LABORAL"
	SectionRecognitions = "RECONOCIMIENTOS"
	SectionCourses      = "CURSOS Y CAPACITACIONES"
	SectionAcademic     = "PRODUCTOS ACADÉMICOS"
)

// composer writes the sections of one resume into a Builder.
type composer struct {
	b        *Builder
	fetcher  *Fetcher
	resolver Resolver
	log      *logrus.Entry
}

func (c *composer) header(ctx context.Context, p *models.PersonalProfile) {
	var photo string
	if p.Photo != "" {
		ref := c.resolver.Resolve(p.Photo)
		f, err := c.fetcher.Fetch(ctx, ref)
		if err != nil {
			c.log.WithError(err).WithField("photo", ref.BaseName()).Warn("photo unavailable, omitting photo")
		} else {
			photo = f.Path
		}
	}

	var contacts []Contact
	for _, ct := range []Contact{
		{Label: "Teléfono:", Value: p.Phone},
		{Label: "Teléfono Fijo:", Value: p.Landline},
		{Label: "Email:", Value: p.Email},
		{Label: "Sitio Web:", Value: p.Website},
	} {
		if strings.TrimSpace(ct.Value) != "" {
			contacts = append(contacts, ct)
		}
	}

	c.b.Header(photo, p.FullName(), p.ProfileDescription, contacts)
}

func (c *composer) personalData(p *models.PersonalProfile) {
	birth := ""
	if p.BirthDate != nil {
		birth = p.BirthDate.Format("2006-01-02")
	}
	sex := ""
	switch p.Sex {
	case models.SexMale:
		sex = "Hombre"
	case models.SexFemale:
		sex = "Mujer"
	}

	rows := []Row{
		{Key: "Cédula de Identidad:", Value: orPlaceholder(p.NationalID)},
		{Key: "Sexo:", Value: orPlaceholder(sex)},
		{Key: "Fecha de Nacimiento:", Value: orPlaceholder(birth)},
		{Key: "Nacionalidad:", Value: orPlaceholder(p.Nationality)},
		{Key: "Lugar de Nacimiento:", Value: orPlaceholder(p.BirthPlace)},
		{Key: "Estado Civil:", Value: orPlaceholder(p.MaritalStatus)},
		{Key: "Licencia de Conducir:", Value: orPlaceholder(p.DriverLicense)},
	}
	if v := strings.TrimSpace(p.HomeAddress); v != "" {
		rows = append(rows, Row{Key: "Dirección Domiciliaria:", Value: v})
	}
	if v := strings.TrimSpace(p.WorkAddress); v != "" {
		rows = append(rows, Row{Key: "Dirección de Trabajo:", Value: v})
	}

	c.b.Section(SectionPersonal)
	c.b.Table(rows)
}

func (c *composer) experiences(items []models.WorkExperience) {
	if len(items) == 0 {
		return
	}
	st := c.b.Styles()
	c.b.Section(SectionExperience)
	for _, e := range items {
		c.title(st.SubTitle, e.Position, e.CompanyName)

		period := dateRange(e.StartDate, e.EndDate)
		if e.CompanyLocation != "" {
			period += " | " + e.CompanyLocation
		}
		c.b.Paragraph(st.Text.With("I"), period)
		c.b.Paragraph(st.Text, e.Duties)
		c.b.Spacer(recordSpacing)
	}
}

func (c *composer) recognitions(items []models.Recognition) {
	if len(items) == 0 {
		return
	}
	st := c.b.Styles()
	c.b.Section(SectionRecognitions)
	for _, r := range items {
		label := r.Type.Label()
		c.title(st.SubTitle, label, r.SponsorEntity)
		if !r.Date.IsZero() {
			c.b.Paragraph(st.Text.With("I"), "Fecha: "+longDate(r.Date))
		}
		c.b.Paragraph(st.Text, r.Description)
		c.certificate(r.Certificate, joinNonEmpty(" - ", label, r.SponsorEntity))
		c.b.Spacer(recordSpacing)
	}
}

func (c *composer) courses(items []models.CompletedCourse) {
	if len(items) == 0 {
		return
	}
	st := c.b.Styles()
	c.b.Section(SectionCourses)
	for _, cs := range items {
		c.b.Paragraph(st.SubTitle, cs.Name)
		c.b.Paragraph(st.Text.With("I"), joinNonEmpty(" | ", cs.SponsorEntity, dateRange(cs.StartDate, cs.EndDate)))
		if cs.TotalHours > 0 {
			c.b.Labeled(st.Text, "Horas:", strconv.Itoa(cs.TotalHours))
		}
		c.b.Paragraph(st.Text, cs.Description)
		c.certificate(cs.Certificate, "Curso: "+cs.Name)
		c.b.Spacer(recordSpacing)
	}
}

func (c *composer) academicProducts(items []models.AcademicProduct) {
	if len(items) == 0 {
		return
	}
	st := c.b.Styles()
	c.b.Section(SectionAcademic)
	for _, a := range items {
		if a.Classifier != "" {
			c.b.Labeled(st.SubTitle.With("B"), a.ResourceName, "("+a.Classifier+")")
		} else {
			c.b.Paragraph(st.SubTitle, a.ResourceName)
		}
		c.b.Paragraph(st.Text, a.Description)
		c.b.Spacer(recordSpacing)
	}
}

func (c *composer) footer(now time.Time) {
	c.b.Footer("Generado el: " + longDate(now))
}

// title renders "<bold name> - detail", or just the bold name.
func (c *composer) title(s Style, name, detail string) {
	if detail == "" {
		c.b.Paragraph(s, name)
		return
	}
	c.b.Labeled(s, name, "- "+detail)
}

// certificate annotates the record with its attachment. Only PDF files are
// queued for embedding; anything else is listed by name.
func (c *composer) certificate(name, title string) {
	if strings.TrimSpace(name) == "" {
		return
	}
	ref := c.resolver.Resolve(name)
	st := c.b.Styles().Normal
	if ref.IsZero() {
		c.log.WithField("certificate", title).Warn("certificate name is not resolvable, skipping")
		return
	}
	if !isPDF(ref.BaseName()) {
		c.b.Labeled(st, "Certificado:", ref.BaseName())
		return
	}
	c.b.Enqueue(Certificate{Ref: ref, Title: title})
	c.b.Labeled(st, "Certificado:", ref.BaseName()+" "+embeddedNote)
}

func isPDF(name string) bool {
	return strings.HasSuffix(strings.ToLower(name), ".pdf")
}

func orPlaceholder(v string) string {
	if v = strings.TrimSpace(v); v == "" {
		return notSpecified
	}
	return v
}

func joinNonEmpty(sep string, parts ...string) string {
	out := parts[:0:0]
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return strings.Join(out, sep)
}

func active[T any, PT interface {
	*T
	models.Record
}](rows []T) []T {
	out := make([]T, 0, len(rows))
	for i := range rows {
		if PT(&rows[i]).IsActive() {
			out = append(out, rows[i])
		}
	}
	return out
}
