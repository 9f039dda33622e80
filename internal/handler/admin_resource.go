package handler

import (
	"context"
	"fmt"
	"net/http"
	"reflect"

	"blackeagles/internal/session"

	"github.com/gin-gonic/gin"
)

// Field kinds understood by the generic admin templates.
const (
	kindText     = "text"
	kindTextarea = "textarea"
	kindNumber   = "number"
	kindCheckbox = "checkbox"
	kindSelect   = "select"
	kindColor    = "color"
	kindImage    = "image"
)

// field describes one form input. Name must equal the struct's form tag.
type field struct {
	Name    string
	Label   string
	Kind    string
	Options []string
	List    bool
}

type formField struct {
	field
	Value any
}

type resourceRow struct {
	ID    int
	Cells []any
}

type resourceMessages struct {
	Created  string
	Updated  string
	Deleted  string
	NotFound string
}

// resource is list/new/edit/delete for one admin table. A nil create or
// remove turns that action off.
type resource[T any] struct {
	path     string
	title    string
	fields   []field
	messages resourceMessages

	list   func(ctx context.Context) ([]*T, error)
	get    func(ctx context.Context, id int) (*T, error)
	save   func(ctx context.Context, item *T) (*T, error)
	remove func(ctx context.Context, id int) error
	create func() *T

	pages   *Pages
	uploads *Uploader
}

type adminResource interface {
	register(admin *gin.RouterGroup, pages *Pages, uploads *Uploader)
}

func (r *resource[T]) base() string { return "/admin/" + r.path }

func (r *resource[T]) register(admin *gin.RouterGroup, pages *Pages, uploads *Uploader) {
	r.pages = pages
	r.uploads = uploads

	admin.GET("/"+r.path, r.listPage)
	admin.GET("/"+r.path+"/:id/edit", r.editForm)
	admin.POST("/"+r.path+"/:id/edit", r.update)
	if r.create != nil {
		admin.GET("/"+r.path+"/new", r.newForm)
		admin.POST("/"+r.path+"/new", r.insert)
	}
	if r.remove != nil {
		admin.POST("/"+r.path+"/:id/delete", r.delete)
	}
}

func (r *resource[T]) listPage(c *gin.Context) {
	items, err := r.list(c)
	if err != nil {
		r.pages.handlePageError(c, err, "List "+r.path, "/admin", r.messages.NotFound)
		return
	}

	columns := make([]field, 0, len(r.fields))
	for _, f := range r.fields {
		if f.List {
			columns = append(columns, f)
		}
	}
	rows := make([]resourceRow, 0, len(items))
	for _, item := range items {
		row := resourceRow{ID: itemID(item)}
		for _, col := range columns {
			row.Cells = append(row.Cells, formValue(item, col.Name))
		}
		rows = append(rows, row)
	}

	r.pages.HTML(c, http.StatusOK, "admin/resource_list", gin.H{
		"Title":     r.title,
		"Base":      r.base(),
		"Columns":   columns,
		"Rows":      rows,
		"CanCreate": r.create != nil,
		"CanDelete": r.remove != nil,
	})
}

func (r *resource[T]) newForm(c *gin.Context) {
	r.renderForm(c, r.create(), r.base()+"/new")
}

func (r *resource[T]) editForm(c *gin.Context) {
	id, err := paramID(c)
	if err == nil {
		var item *T
		if item, err = r.get(c, id); err == nil {
			r.renderForm(c, item, fmt.Sprintf("%s/%d/edit", r.base(), id))
			return
		}
	}
	r.pages.handlePageError(c, err, "Edit "+r.path, r.base(), r.messages.NotFound)
}

func (r *resource[T]) renderForm(c *gin.Context, item *T, action string) {
	fields := make([]formField, 0, len(r.fields))
	for _, f := range r.fields {
		fields = append(fields, formField{field: f, Value: formValue(item, f.Name)})
	}
	r.pages.HTML(c, http.StatusOK, "admin/resource_form", gin.H{
		"Title":  r.title,
		"Base":   r.base(),
		"Action": action,
		"IsNew":  itemID(item) == 0,
		"Fields": fields,
	})
}

func (r *resource[T]) insert(c *gin.Context) {
	r.store(c, 0, r.base()+"/new", r.messages.Created)
}

func (r *resource[T]) update(c *gin.Context) {
	id, err := paramID(c)
	if err != nil {
		r.pages.handlePageError(c, err, "Update "+r.path, r.base(), r.messages.NotFound)
		return
	}
	r.store(c, id, fmt.Sprintf("%s/%d/edit", r.base(), id), r.messages.Updated)
}

// store binds a fresh item so unchecked boxes read as false, then applies uploads.
func (r *resource[T]) store(c *gin.Context, id int, back, success string) {
	item := new(T)
	if err := c.ShouldBind(item); err != nil {
		r.pages.Redirect(c, back, session.FlashError, "번호와 정렬 순서는 숫자여야 합니다.")
		return
	}
	setItemID(item, id)

	for _, f := range r.fields {
		if f.Kind != kindImage {
			continue
		}
		url, err := r.uploads.Save(c, f.Name+"_file")
		if err != nil {
			r.pages.handlePageError(c, err, "Upload "+r.path, back, r.messages.NotFound)
			return
		}
		if url != "" {
			setFormValue(item, f.Name, url)
		}
	}

	if _, err := r.save(c, item); err != nil {
		r.pages.handlePageError(c, err, "Save "+r.path, back, r.messages.NotFound)
		return
	}
	r.pages.Redirect(c, r.base(), session.FlashSuccess, success)
}

func (r *resource[T]) delete(c *gin.Context) {
	id, err := paramID(c)
	if err == nil {
		err = r.remove(c, id)
	}
	if err != nil {
		r.pages.handlePageError(c, err, "Delete "+r.path, r.base(), r.messages.NotFound)
		return
	}
	r.pages.Redirect(c, r.base(), session.FlashSuccess, r.messages.Deleted)
}

// Reflection helpers keyed by the form tag.

func structField(item any, tag string) reflect.Value {
	v := reflect.ValueOf(item).Elem()
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		if t.Field(i).Tag.Get("form") == tag {
			return v.Field(i)
		}
	}
	return reflect.Value{}
}

func formValue(item any, tag string) any {
	f := structField(item, tag)
	if !f.IsValid() {
		return nil
	}
	return f.Interface()
}

func setFormValue(item any, tag, value string) {
	f := structField(item, tag)
	if f.IsValid() && f.Kind() == reflect.String && f.CanSet() {
		f.SetString(value)
	}
}

func itemID(item any) int {
	f := reflect.ValueOf(item).Elem().FieldByName("ID")
	if !f.IsValid() {
		return 0
	}
	return int(f.Int())
}

func setItemID(item any, id int) {
	f := reflect.ValueOf(item).Elem().FieldByName("ID")
	if f.IsValid() && f.CanSet() {
		f.SetInt(int64(id))
	}
}
