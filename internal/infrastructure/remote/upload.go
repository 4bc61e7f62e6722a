package remote

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"

	"github.com/jhoicas/cjstore-api/internal/application/dto"
)

// ImageField nombre del campo multipart que espera POST /products/{id}/image.
const ImageField = "image"

// UploadImage sube la imagen del producto y devuelve la URL pública asignada.
func (c *Client) UploadImage(ctx context.Context, productID, filename, contentType string, r io.Reader) (string, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="%s"; filename="%s"`, ImageField, filename))
	h.Set("Content-Type", contentType)
	part, err := mw.CreatePart(h)
	if err != nil {
		return "", fmt.Errorf("remote: multipart: %w", err)
	}
	if _, err := io.Copy(part, r); err != nil {
		return "", fmt.Errorf("remote: leer imagen: %w", err)
	}
	if err := mw.Close(); err != nil {
		return "", fmt.Errorf("remote: multipart: %w", err)
	}

	raw, err := c.send(ctx, http.MethodPost, "/products/"+escape(productID)+"/image", mw.FormDataContentType(), &buf)
	if err != nil {
		return "", err
	}
	var out dto.ImageUploadResponse
	if err := jsonUnmarshal(raw, &out); err != nil {
		return "", err
	}
	return out.Image, nil
}
