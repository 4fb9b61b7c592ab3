// pager — потокобезопасная «подгрузка ещё» поверх keyset-пагинации.
//
// Пейджер хранит курсор между вызовами и гарантирует, что в каждый момент
// выполняется не более одной выборки: конкурентные вызовы LoadMore во время
// активной загрузки возвращаются сразу, не создавая дублирующих запросов
// (иначе обе выборки ушли бы с одним и тем же курсором и выдали одну и ту же
// страницу дважды).
package pager

import (
	"context"
	"sync"
)

// FetchFunc загружает одну страницу по курсору.
// Пустой nextToken означает, что данных больше нет.
type FetchFunc[T any] func(ctx context.Context, pageToken string) (items []T, nextToken string, err error)

// Pager — последовательная подгрузка страниц с защитой от дублирующих вызовов.
type Pager[T any] struct {
	mu        sync.Mutex
	fetch     FetchFunc[T]
	token     string
	loading   bool
	exhausted bool
	gen       uint64 // инкрементируется при Reset: устаревший результат не двигает курсор
}

// New создаёт пейджер с заданной функцией выборки.
func New[T any](fetch FetchFunc[T]) *Pager[T] {
	return &Pager[T]{fetch: fetch}
}

// LoadMore загружает следующую страницу.
//
// Возвращает (nil, false, nil) без обращения к fetch, если:
//   - загрузка уже идёт (конкурентный триггер);
//   - данные исчерпаны.
//
// loaded=true означает, что выборка действительно выполнялась и items —
// её результат (возможно, пустой). Ошибка выборки не двигает курсор:
// повторный LoadMore повторит ту же страницу.
func (p *Pager[T]) LoadMore(ctx context.Context) (items []T, loaded bool, err error) {
	p.mu.Lock()
	if p.loading || p.exhausted {
		p.mu.Unlock()
		return nil, false, nil
	}
	p.loading = true
	token := p.token
	gen := p.gen
	p.mu.Unlock()

	items, next, err := p.fetch(ctx, token)

	p.mu.Lock()
	defer p.mu.Unlock()
	p.loading = false

	if err != nil {
		return nil, true, err
	}

	if gen != p.gen {
		// Пейджер сброшен во время загрузки: страница устарела.
		return nil, true, nil
	}

	p.token = next
	if next == "" {
		p.exhausted = true
	}

	return items, true, nil
}

// Exhausted сообщает, что все страницы загружены.
func (p *Pager[T]) Exhausted() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.exhausted
}

// Reset возвращает пейджер к первой странице (например, при смене фильтров).
// Активную загрузку Reset не прерывает, но её результат будет отброшен.
func (p *Pager[T]) Reset() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.token = ""
	p.exhausted = false
	p.gen++
}
