package models

// ListOptions — базовые параметры постраничной выдачи.
//
// Особенности:
//   - при PageSize == 0 применяется серверный default (config.LimitsConfig.Default);
//   - PageToken == "" -> первая страница;
//   - токен валиден только для того же порядка сортировки и того же набора
//     фильтров: при смене фильтров вызывающая сторона обязана сбросить курсор.
type ListOptions struct {
	PageSize  int32
	PageToken string
}
