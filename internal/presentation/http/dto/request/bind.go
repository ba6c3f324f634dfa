package request

import (
	"encoding/json"
	"errors"
	"io"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

// BindStrict decodes the request body into obj, rejecting unknown fields,
// then runs the standard binding validators. POS clients are versioned
// terminals, so a field the server does not know about is a bug on the
// client, not something to silently drop.
func BindStrict(c *gin.Context, obj interface{}) error {
	decoder := json.NewDecoder(c.Request.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(obj); err != nil {
		if errors.Is(err, io.EOF) {
			return errors.New("request body is empty")
		}
		return err
	}
	return binding.Validator.ValidateStruct(obj)
}
