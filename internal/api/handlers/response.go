package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"
)

const msgInternalError = "internal server error"

// maxBodyBytes ограничение на размер тела запроса
const maxBodyBytes = 1 << 20

// ErrEmptyBody тело запроса отсутствует
var ErrEmptyBody = errors.New("request body is empty")

// ErrorResponse тело ответа с ошибкой
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse тело ответа с текстовым сообщением
type MessageResponse struct {
	Message string `json:"message"`
}

// CreatedResponse ответ на создание записи
type CreatedResponse struct {
	Message string `json:"message"`
	ID      int64  `json:"id"`
}

// MsgResponse ответ админских изменений прайс-листа и выходных
type MsgResponse struct {
	Msg string `json:"msg"`
	ID  int64  `json:"id,omitempty"`
}

// DataResponse обертка {data: ...}
type DataResponse struct {
	Data interface{} `json:"data"`
}

// RespondJSON пишет payload как JSON с указанным статусом
func RespondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload == nil {
		return
	}
	_ = json.NewEncoder(w).Encode(payload)
}

// RespondData пишет {data: payload} со статусом 200
func RespondData(w http.ResponseWriter, payload interface{}) {
	RespondJSON(w, http.StatusOK, DataResponse{Data: payload})
}

// RespondMessage пишет {message: msg} со статусом 200
func RespondMessage(w http.ResponseWriter, msg string) {
	RespondJSON(w, http.StatusOK, MessageResponse{Message: msg})
}

// RespondMsg пишет {msg: msg} со статусом 200
func RespondMsg(w http.ResponseWriter, msg string) {
	RespondJSON(w, http.StatusOK, MsgResponse{Msg: msg})
}

// RespondError пишет {error: msg} с указанным статусом
func RespondError(w http.ResponseWriter, status int, msg string) {
	RespondJSON(w, status, ErrorResponse{Error: msg})
}

func RespondBadRequest(w http.ResponseWriter, msg string) {
	RespondError(w, http.StatusBadRequest, msg)
}

func RespondUnauthorized(w http.ResponseWriter, msg string) {
	RespondError(w, http.StatusUnauthorized, msg)
}

func RespondNotFound(w http.ResponseWriter, msg string) {
	RespondError(w, http.StatusNotFound, msg)
}

// RespondInternalError отдает клиенту общее сообщение; подробности только в логах
func RespondInternalError(w http.ResponseWriter) {
	RespondError(w, http.StatusInternalServerError, msgInternalError)
}

// DecodeJSON читает тело запроса в dst, неизвестные поля игнорируются
func DecodeJSON(r *http.Request, dst interface{}) error {
	if r.Body == nil {
		return ErrEmptyBody
	}
	defer r.Body.Close()

	if err := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes)).Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return ErrEmptyBody
		}
		return fmt.Errorf("decode json: %w", err)
	}
	return nil
}

// PathID достает положительный int64 из переменной пути
func PathID(r *http.Request, name string) (int64, error) {
	raw := mux.Vars(r)[name]
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parse %s %q: %w", name, raw, err)
	}
	if id <= 0 {
		return 0, fmt.Errorf("%s must be positive, got %d", name, id)
	}
	return id, nil
}

// ValidationMessage текст ошибки валидации без префикса sentinel-ошибки,
// например "name is required"
func ValidationMessage(err, sentinel error) string {
	msg := err.Error()
	if trimmed := strings.TrimPrefix(msg, sentinel.Error()+": "); trimmed != msg {
		return trimmed
	}
	return msg
}
