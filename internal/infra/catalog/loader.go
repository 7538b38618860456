package catalog

import (
	"fmt"
	"io"

	"github.com/BurntSushi/toml"

	"github.com/m04kA/SMC-MeetingRoomService/internal/domain"
)

// LoadFile загружает каталог из TOML файла.
// Вызывается один раз при старте, результат не меняется до конца работы процесса.
func LoadFile(path string) (*domain.Catalog, error) {
	var model fileModel
	meta, err := toml.DecodeFile(path, &model)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrReadFile, path, err)
	}
	return build(&model, meta)
}

// Load загружает каталог из произвольного reader
func Load(r io.Reader) (*domain.Catalog, error) {
	var model fileModel
	meta, err := toml.NewDecoder(r).Decode(&model)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrReadFile, err)
	}
	return build(&model, meta)
}

func build(model *fileModel, meta toml.MetaData) (*domain.Catalog, error) {
	// Опечатка в ключе (например, "timeslots") иначе молча дала бы комнату без слотов
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("%w: %v", ErrUnknownKeys, undecoded)
	}
	return domain.NewCatalog(model.toDomain())
}
